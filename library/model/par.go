// Paragraph element, produced by realize/par.go on finish.
// Translated from typst-library/src/model/par.rs

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// ParElem gathers inline-class content into a paragraph.
type ParElem struct {
	foundations.Base
	Children []foundations.Content
}

func (*ParElem) IsContentElement() {}

func (e *ParElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *ParElem) LayoutSingleMarker() {}
