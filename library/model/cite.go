// Citation elements.
// Translated from typst-library/src/model/cite.rs

package model

import (
	"strings"

	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/text"
	"github.com/lindqvist/typstrealize/syntax"
)

// CiteElem references a bibliography entry by key.
type CiteElem struct {
	foundations.Base
	Key string
}

func (*CiteElem) IsContentElement()              {}
func (e *CiteElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
func (e *CiteElem) Locatable() bool              { return true }
func (e *CiteElem) NeedsPreparation() bool       { return !e.IsPrepared() }

func (e *CiteElem) WithGuard(g foundations.Guard) foundations.ContentElement {
	cp := *e
	cp.Base = cp.Base.WithGuardBase(g)
	return &cp
}

// CiteGroupElem is a run of adjacent citations, produced by
// realize/cite.go on finish.
type CiteGroupElem struct {
	foundations.Base
	Children []foundations.Content
}

func (*CiteGroupElem) IsContentElement()              {}
func (e *CiteGroupElem) Behaviour() foundations.Behaviour { return foundations.Strong() }

// Show dissolves the group into a bracketed, comma-joined run of its
// citation keys; a cite group has no shape of its own once realized,
// only the inline text its keys produce.
func (e *CiteGroupElem) Show() foundations.Content {
	var sb strings.Builder
	sb.WriteByte('[')
	n := 0
	for _, child := range e.Children {
		cite, ok := foundations.ElemOf[*CiteElem](child)
		if !ok {
			continue
		}
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(cite.Key)
		n++
	}
	sb.WriteByte(']')
	return foundations.PackElem(&text.TextElem{Text: sb.String()}, syntax.Detached(), "")
}
