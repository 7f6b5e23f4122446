// Emphasis element.
// Translated from typst-library/src/model/emph.rs

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// EmphElem emphasizes content by toggling italics.
type EmphElem struct {
	foundations.Base
	Body foundations.Content
}

func (*EmphElem) IsContentElement() {}

func (e *EmphElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *EmphElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

// Show dissolves the element into its body, styled to toggle italics;
// emphasis has no shape of its own once realized.
func (e *EmphElem) Show() foundations.Content {
	s := foundations.NewStyles()
	s.Set("text", "style", "italic")
	return foundations.StyledWithMap(e.Body, s)
}
