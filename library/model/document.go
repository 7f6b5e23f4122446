// Document, page, pagebreak, and flow elements.
// Translated from typst-library/src/model/{document,pagebreak}.rs and
// typst-library/src/layout/{page,flow}.rs.

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// DocumentElem is the realization core's top-level product: an
// ordered sequence of pages.
type DocumentElem struct {
	foundations.Base
	Pages []foundations.Content
}

func (*DocumentElem) IsContentElement() {}

// PageElem is one page: the flow body closed by the builder's
// interruptPage.
type PageElem struct {
	foundations.Base
	Body foundations.Content
}

func (*PageElem) IsContentElement() {}

// Parity constrains which page a pagebreak's "to" lands on, matching
// the upstream PagebreakElem.to field (Option<Parity> in the original,
// a concrete enum here rather than a boolean per the SPEC_FULL
// supplement).
type Parity int

const (
	ParityAny Parity = iota
	ParityEven
	ParityOdd
)

// Matches reports whether a 1-based page number satisfies the parity
// constraint.
func (p Parity) Matches(pageNumber int) bool {
	switch p {
	case ParityEven:
		return pageNumber%2 == 0
	case ParityOdd:
		return pageNumber%2 == 1
	default:
		return true
	}
}

// PagebreakElem requests a page boundary. Weak pagebreaks are
// swallowed if the page would be empty anyway; To optionally pads with
// a blank page to reach the requested parity.
type PagebreakElem struct {
	foundations.Base
	Weak bool
	To   Parity
}

func (*PagebreakElem) IsContentElement() {}

// FlowElem gathers block-class content into a flow, produced by
// realize/flow.go on finish and by realize_block as its top-level
// product.
type FlowElem struct {
	foundations.Base
	Children []foundations.Content
}

func (*FlowElem) IsContentElement()       {}
func (e *FlowElem) LayoutMultipleMarker() {}
