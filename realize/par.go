// ParBuilder: gathers inline-class content into a paragraph (section
// 4.7).
package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/introspection"
	"github.com/lindqvist/typstrealize/library/math"
	"github.com/lindqvist/typstrealize/library/model"
	"github.com/lindqvist/typstrealize/library/text"
)

// ParBuilder accumulates inline content for one paragraph. Join rules
// for adjacent spacing (e.g. two spaces in a row) are resolved through
// a BehavedBuilder exactly as FlowBuilder does for block spacing.
type ParBuilder struct {
	items     BehavedBuilder
	hasStrong bool
}

// Accept reports whether content belongs inside the current
// paragraph.
func (b *ParBuilder) Accept(content foundations.Content, styles *foundations.StyleChain) bool {
	if isInlineContent(content) {
		beh := behaviourOf(content)
		if beh.IsStrong() {
			b.hasStrong = true
		}
		b.items.Push(content, beh)
		return true
	}
	if foundations.Is[*introspection.MetaElem](content) {
		if !b.hasStrong {
			return false
		}
		b.items.Push(content, foundations.Invisible())
		return true
	}
	return false
}

func isInlineContent(content foundations.Content) bool {
	switch elem := content.Element.(type) {
	case *text.SpaceElem, *text.TextElem, *model.HElem, *text.LinebreakElem, *text.SmartQuoteElem, *model.BoxElem:
		return true
	case *math.EquationElem:
		return !elem.Block
	default:
		return false
	}
}

func behaviourOf(content foundations.Content) foundations.Behaviour {
	if b, ok := content.Element.(foundations.Behave); ok {
		return b.Behaviour()
	}
	return foundations.Strong()
}

// IsEmpty reports whether no inline content has been accepted yet.
func (b *ParBuilder) IsEmpty() bool { return b.items.IsEmpty() }

// Finish finalizes the accumulated inline content into a ParElem.
func (b *ParBuilder) Finish() foundations.Content {
	children := b.items.Finish()
	par := &model.ParElem{Children: children}
	out := foundations.PackElem(par, firstSpan(children), "")
	b.items = BehavedBuilder{}
	b.hasStrong = false
	return out
}
