// Package text provides the minimal inline-content element kinds the
// realization core consumes: Text, Space, Parbreak, Linebreak, and
// SmartQuote. Font-shaping and paint fields (Font, Size, Weight,
// Stretch, Fill, Stroke, Tracking, Spacing, Baseline) are coupled to
// the layout engine and dropped here as out of scope (style values and
// layout are both named external collaborators in section 1). Only the
// content-bearing shape needed by realize/par.go and realize/flow.go
// survives.
package text

import "github.com/lindqvist/typstrealize/library/foundations"

// TextElem is a run of literal text.
type TextElem struct {
	foundations.Base
	Text string
}

func (*TextElem) IsContentElement() {}

func (e *TextElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *TextElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

// SpaceElem is an inline whitespace token between words. Its
// behaviour is the lowest weak level: any stronger spacing or another
// equal-or-higher weak spacing wins the join.
type SpaceElem struct {
	foundations.Base
}

func (*SpaceElem) IsContentElement() {}

func (e *SpaceElem) Behaviour() foundations.Behaviour { return foundations.Weak(1) }

// ParbreakElem separates paragraphs. FlowBuilder consumes it directly
// (section 4.6) rather than feeding it to BehavedBuilder, but it still
// reports Invisible so any code generically scanning a child list
// treats it as having no visual presence.
type ParbreakElem struct {
	foundations.Base
}

func (*ParbreakElem) IsContentElement() {}

func (e *ParbreakElem) Behaviour() foundations.Behaviour { return foundations.Invisible() }

// LinebreakElem forces a line break within a paragraph without
// starting a new one.
type LinebreakElem struct {
	foundations.Base
	Justify bool
}

func (*LinebreakElem) IsContentElement() {}

func (e *LinebreakElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

// SmartQuoteElem is a context-sensitive quotation mark, resolved to an
// opening or closing glyph by the (out-of-scope) layout engine.
type SmartQuoteElem struct {
	foundations.Base
	Double bool
}

func (*SmartQuoteElem) IsContentElement() {}

func (e *SmartQuoteElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
