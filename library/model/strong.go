// Strong emphasis element.
// Translated from typst-library/src/model/strong.rs

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// StrongElem strongly emphasizes content by increasing the font
// weight by Delta (default DefaultStrongDelta).
type StrongElem struct {
	foundations.Base
	Delta int64
	Body  foundations.Content
}

func (*StrongElem) IsContentElement() {}

func (e *StrongElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *StrongElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

// Show dissolves the element into its body, styled with the weight
// delta it contributes; strong emphasis has no shape of its own once
// realized, only a style that its inline children carry forward.
func (e *StrongElem) Show() foundations.Content {
	delta := e.Delta
	if delta == 0 {
		delta = DefaultStrongDelta
	}
	s := foundations.NewStyles()
	s.Set("text", "delta", delta)
	return foundations.StyledWithMap(e.Body, s)
}

// DefaultStrongDelta is the default font weight increase for strong
// emphasis.
const DefaultStrongDelta = 300
