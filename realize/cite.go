// CiteGroupBuilder: groups consecutive citations (section 4.9).
package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/introspection"
	"github.com/lindqvist/typstrealize/library/model"
	"github.com/lindqvist/typstrealize/library/text"
)

// CiteGroupBuilder accumulates a run of adjacent Cite elements. Space
// and Meta arriving between citations are staged rather than joined
// into the group; a following citation discards staged Space (the
// citations absorb the whitespace) but leaves other staged content
// (Meta) in place for replay when the group finally interrupts.
type CiteGroupBuilder struct {
	items      []foundations.Content
	staged     []foundations.Content
	groupStyle *foundations.StyleChain
}

// Accept reports whether content belongs to (or pends inside) a
// citation group.
func (b *CiteGroupBuilder) Accept(content foundations.Content, styles *foundations.StyleChain) bool {
	if foundations.Is[*model.CiteElem](content) {
		if len(b.items) == 0 {
			b.groupStyle = styles
		}
		b.staged = dropKind[*text.SpaceElem](b.staged)
		b.items = append(b.items, content)
		return true
	}
	if len(b.items) == 0 {
		return false
	}
	if foundations.Is[*text.SpaceElem](content) || foundations.Is[*introspection.MetaElem](content) {
		b.staged = append(b.staged, content)
		return true
	}
	return false
}

// IsEmpty reports whether no citation has been accepted yet.
func (b *CiteGroupBuilder) IsEmpty() bool { return len(b.items) == 0 }

// Styles returns the style chain recorded at the first citation, used
// to realize the finished group under the styles it actually saw
// rather than whatever is current when the group closes.
func (b *CiteGroupBuilder) Styles() *foundations.StyleChain { return b.groupStyle }

// Finish finalizes the group into a CiteGroupElem and returns staged
// content to replay, in arrival order, after the group. The product
// carries no styles of its own; the caller realizes it under Styles().
func (b *CiteGroupBuilder) Finish() (foundations.Content, []foundations.Content) {
	group := &model.CiteGroupElem{Children: b.items}
	product := foundations.PackElem(group, firstSpan(b.items), "")
	staged := b.staged
	b.items = nil
	b.staged = nil
	b.groupStyle = nil
	return product, staged
}

// dropKind removes every element of kind K from items, preserving
// order of the rest.
func dropKind[K foundations.ContentElement](items []foundations.Content) []foundations.Content {
	out := items[:0]
	for _, it := range items {
		if foundations.Is[K](it) {
			continue
		}
		out = append(out, it)
	}
	return out
}
