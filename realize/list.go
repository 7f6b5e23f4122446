// ListBuilder: groups homogeneous list/enum/term items (section 4.8).
package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/model"
	"github.com/lindqvist/typstrealize/library/text"
)

type listItemKind int

const (
	listItemNone listItemKind = iota
	listItemBullet
	listItemEnum
	listItemTerm
)

func classifyListItem(content foundations.Content) listItemKind {
	switch {
	case foundations.Is[*model.ListItemElem](content):
		return listItemBullet
	case foundations.Is[*model.EnumItemElem](content):
		return listItemEnum
	case foundations.Is[*model.TermItemElem](content):
		return listItemTerm
	default:
		return listItemNone
	}
}

// ListBuilder accumulates a run of items of one kind. Space and
// Parbreak arriving between items are staged; the next matching item
// drops the staged run (clearing tight if any staged token was a
// Parbreak); non-matching content triggers an interrupt in the
// caller, which finalizes and retries.
type ListBuilder struct {
	kind  listItemKind
	tight bool
	items []foundations.Content

	staged []foundations.Content
}

// Accept reports whether content extends (or pends inside) the
// current list.
func (b *ListBuilder) Accept(content foundations.Content, styles *foundations.StyleChain) bool {
	probe := content
	if child, _, ok := content.ToStyled(); ok {
		probe = child
	}
	if k := classifyListItem(probe); k != listItemNone {
		if len(b.items) == 0 {
			b.kind = k
			b.tight = true
		} else if k != b.kind {
			return false
		}
		for _, s := range b.staged {
			if foundations.Is[*text.ParbreakElem](s) {
				b.tight = false
			}
		}
		b.staged = nil
		b.items = append(b.items, applyLocalStylesToItem(content))
		return true
	}
	if len(b.items) == 0 {
		return false
	}
	if foundations.Is[*text.SpaceElem](content) || foundations.Is[*text.ParbreakElem](content) {
		b.staged = append(b.staged, content)
		return true
	}
	return false
}

// applyLocalStylesToItem pushes a styled wrapper's local map down into
// the item's body/term/description, the way a real show-set-on-item
// recipe's styles would be consumed if the item were laid out
// directly, rather than carrying the wrapper into the finalized list.
func applyLocalStylesToItem(content foundations.Content) foundations.Content {
	child, localStyles, ok := content.ToStyled()
	if !ok {
		return content
	}
	switch it := child.Element.(type) {
	case *model.ListItemElem:
		cp := *it
		cp.Body = foundations.StyledWithMap(cp.Body, localStyles)
		return foundations.PackElem(&cp, child.Span, child.Label)
	case *model.EnumItemElem:
		cp := *it
		cp.Body = foundations.StyledWithMap(cp.Body, localStyles)
		return foundations.PackElem(&cp, child.Span, child.Label)
	case *model.TermItemElem:
		cp := *it
		cp.Term = foundations.StyledWithMap(cp.Term, localStyles)
		cp.Description = foundations.StyledWithMap(cp.Description, localStyles)
		return foundations.PackElem(&cp, child.Span, child.Label)
	default:
		return content
	}
}

// IsEmpty reports whether no item has been accepted yet.
func (b *ListBuilder) IsEmpty() bool { return len(b.items) == 0 }

// Finish finalizes the accumulated items into a List, Enum, or Terms
// element, matching the kind of the first item accepted, and returns
// staged content to replay after it.
func (b *ListBuilder) Finish() (foundations.Content, []foundations.Content) {
	span := firstSpan(b.items)
	var product foundations.ContentElement
	switch b.kind {
	case listItemBullet:
		product = &model.ListElem{Tight: b.tight, Children: b.items}
	case listItemEnum:
		product = &model.EnumElem{Tight: b.tight, Children: b.items}
	case listItemTerm:
		product = &model.TermsElem{Tight: b.tight, Children: b.items}
	}
	out := foundations.PackElem(product, span, "")
	staged := b.staged
	b.items = nil
	b.staged = nil
	b.kind = listItemNone
	b.tight = false
	return out, staged
}
