// List/enum/terms item and container elements.
// Translated from typst-library/src/model/{list,enum,terms}.rs

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// ListItemElem is one bullet-list item.
type ListItemElem struct {
	foundations.Base
	Body foundations.Content
}

func (*ListItemElem) IsContentElement()              {}
func (e *ListItemElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *ListItemElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

// EnumItemElem is one numbered-list item; Number is nil for
// auto-numbering.
type EnumItemElem struct {
	foundations.Base
	Number *int64
	Body   foundations.Content
}

func (*EnumItemElem) IsContentElement()              {}
func (e *EnumItemElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *EnumItemElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

// TermItemElem is one description-list item: a term paired with its
// description.
type TermItemElem struct {
	foundations.Base
	Term        foundations.Content
	Description foundations.Content
}

func (*TermItemElem) IsContentElement()              {}
func (e *TermItemElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

func (e *TermItemElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

// ListElem is a finalized bullet list: homogeneous ListItemElem
// children (invariant checked by realize/list.go before construction).
type ListElem struct {
	foundations.Base
	Tight    bool
	Children []foundations.Content
}

func (*ListElem) IsContentElement()              {}
func (e *ListElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
func (e *ListElem) LayoutSingleMarker()          {}

// EnumElem is a finalized numbered list.
type EnumElem struct {
	foundations.Base
	Tight    bool
	Children []foundations.Content
}

func (*EnumElem) IsContentElement()              {}
func (e *EnumElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
func (e *EnumElem) LayoutSingleMarker()          {}

// TermsElem is a finalized description list.
type TermsElem struct {
	foundations.Base
	Tight    bool
	Children []foundations.Content
}

func (*TermsElem) IsContentElement()              {}
func (e *TermsElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
func (e *TermsElem) LayoutSingleMarker()          {}
