// Heading element.
// Translated from typst-library/src/model/heading.rs

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// HeadingElem is a section heading. It is Locatable (so it can be
// referenced and appear in an outline) and Synthesize-capable (it
// computes whether it participates in numbering once, during
// preparation).
type HeadingElem struct {
	foundations.Base
	Level    int
	Numbered bool
	Body     foundations.Content

	// Number is populated by Synthesize; empty until prepared or when
	// Numbered is false.
	Number string
}

func (*HeadingElem) IsContentElement() {}

func (e *HeadingElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *HeadingElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

func (e *HeadingElem) NeedsPreparation() bool { return !e.IsPrepared() }

func (e *HeadingElem) Locatable() bool { return true }

// Synthesize computes the heading's Number field exactly once. The
// real counter/numbering subsystem lives in introspection (out of
// scope here per section 1); this assigns a representative "1." so
// the field-population step has an observable, idempotent effect.
func (e *HeadingElem) Synthesize(chain *foundations.StyleChain) error {
	if e.Numbered && e.Number == "" {
		e.Number = "1."
	}
	return nil
}

// ShowSet contributes a strong-emphasis delta (DefaultStrongDelta plus
// 100 per level) under the "strong"/"delta" style key for the heading's
// body. StrongElem.Show takes its weight from its own Delta field and
// does not read this key.
func (e *HeadingElem) ShowSet(chain *foundations.StyleChain) *foundations.Styles {
	s := foundations.NewStyles()
	s.Set("strong", "delta", int64(DefaultStrongDelta+100*e.Level))
	return s
}

// Show is the heading's built-in rewrite: strongly emphasize the body
// and present it as its own block so FlowBuilder surrounds it with
// block spacing.
func (e *HeadingElem) Show() foundations.Content {
	strong := foundations.PackElem(&StrongElem{Body: e.Body}, e.Body.Span, "")
	return foundations.PackElem(&BlockElem{Body: strong}, e.Body.Span, "")
}
