// Box, block, place, colbreak, and align container elements.
// Translated from typst-library/src/layout/{container,columns,align}.rs

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// BoxElem is an inline-level container, accepted directly by
// ParBuilder (section 4.7).
type BoxElem struct {
	foundations.Base
	Body foundations.Content
}

func (*BoxElem) IsContentElement()              {}
func (e *BoxElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

// BlockElem is a block-level container; Above/Below override the
// style chain's default block spacing when set (section 4.6: "Above/
// below are taken from a Block's own spacing if applicable, else from
// the style chain's default").
type BlockElem struct {
	foundations.Base
	Body  foundations.Content
	Above *float64
	Below *float64
}

func (*BlockElem) IsContentElement()              {}
func (e *BlockElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
func (e *BlockElem) LayoutSingleMarker()          {}

// PlaceElem removes its body from normal flow, placing it at an
// absolute position; FlowBuilder pushes it verbatim like V/Colbreak/
// Meta.
type PlaceElem struct {
	foundations.Base
	Body foundations.Content
}

func (*PlaceElem) IsContentElement()              {}
func (e *PlaceElem) Behaviour() foundations.Behaviour { return foundations.Invisible() }

// ColbreakElem requests a column break; Destructive because it
// annihilates any pending weak/supportive spacing run immediately
// before it.
type ColbreakElem struct {
	foundations.Base
	Weak bool
}

func (*ColbreakElem) IsContentElement()              {}
func (e *ColbreakElem) Behaviour() foundations.Behaviour { return foundations.Destructive() }

// AlignElem overrides alignment for its body; a block-level element
// like any other from the realization core's point of view.
type AlignElem struct {
	foundations.Base
	Body foundations.Content
}

func (*AlignElem) IsContentElement()              {}
func (e *AlignElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
func (e *AlignElem) LayoutSingleMarker()          {}
