// FlowBuilder: gathers block-class content into a flow (section 4.6).
package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/introspection"
	"github.com/lindqvist/typstrealize/library/model"
)

// defaultBlockSpacing is the style chain's fallback above/below block
// spacing when neither the element nor a "block"/"above" set-rule
// supplies one.
const defaultBlockSpacing = 12.0

// listAttachSpacing is the spacing prepended before a tight list that
// immediately follows non-parbreak content, derived from paragraph
// leading in the original; kept as a constant here since leading
// itself is a layout-engine property out of scope for this core.
const listAttachSpacing = 6.0

// FlowBuilder accumulates block-level content for one flow, inserting
// above/below spacing around single- or multi-fragment elements and
// paragraphs.
type FlowBuilder struct {
	items           BehavedBuilder
	lastWasParbreak bool
}

// Accept reports whether content belongs in the current flow.
func (b *FlowBuilder) Accept(content foundations.Content, styles *foundations.StyleChain) bool {
	if isParbreak(content) {
		b.lastWasParbreak = true
		return true
	}

	if isVerbatimFlowToken(content) {
		b.items.Push(content, behaviourOf(content))
		b.lastWasParbreak = false
		return true
	}

	if !isFlowBlock(content) {
		return false
	}

	above, below := blockSpacing(content, styles)

	if isTightList(content) && !b.lastWasParbreak {
		b.items.Push(foundations.PackElem(&model.VElem{Amount: listAttachSpacing, WeakLevel: 2}, content.Span, ""), foundations.Weak(2))
	}

	b.items.Push(foundations.PackElem(&model.VElem{Amount: above, WeakLevel: 1}, content.Span, ""), foundations.Weak(1))
	b.items.Push(content, behaviourOf(content))
	b.items.Push(foundations.PackElem(&model.VElem{Amount: below, WeakLevel: 1}, content.Span, ""), foundations.Weak(1))
	b.lastWasParbreak = false
	return true
}

func isParbreak(content foundations.Content) bool {
	return elementName(content.Element) == "parbreak"
}

func isVerbatimFlowToken(content foundations.Content) bool {
	switch content.Element.(type) {
	case *model.VElem, *model.ColbreakElem, *introspection.MetaElem, *model.PlaceElem:
		return true
	default:
		return false
	}
}

func isFlowBlock(content foundations.Content) bool {
	if content.Element == nil {
		return false
	}
	if _, ok := content.Element.(foundations.LayoutSingle); ok {
		return true
	}
	if _, ok := content.Element.(foundations.LayoutMultiple); ok {
		return true
	}
	return elementName(content.Element) == "par"
}

func isTightList(content foundations.Content) bool {
	switch elem := content.Element.(type) {
	case *model.ListElem:
		return elem.Tight
	case *model.EnumElem:
		return elem.Tight
	case *model.TermsElem:
		return elem.Tight
	default:
		return false
	}
}

// blockSpacing resolves a block element's own above/below override, or
// falls back to the style chain's default block spacing.
func blockSpacing(content foundations.Content, styles *foundations.StyleChain) (float64, float64) {
	if block, ok := content.Element.(*model.BlockElem); ok {
		above := defaultBlockSpacing
		below := defaultBlockSpacing
		if block.Above != nil {
			above = *block.Above
		} else if v, ok := styles.Get("block", "above"); ok {
			above = v.(float64)
		}
		if block.Below != nil {
			below = *block.Below
		} else if v, ok := styles.Get("block", "below"); ok {
			below = v.(float64)
		}
		return above, below
	}
	above := styles.GetWithDefault("block", "above", defaultBlockSpacing).(float64)
	below := styles.GetWithDefault("block", "below", defaultBlockSpacing).(float64)
	return above, below
}

// IsEmpty reports whether the flow has accumulated no content yet.
func (b *FlowBuilder) IsEmpty() bool { return b.items.IsEmpty() }

// HasStrong reports whether the flow contains at least one Strong
// element, used by interrupt_page to decide whether to keep the page.
func (b *FlowBuilder) HasStrong() bool { return b.items.HasStrong() }

// Finish finalizes the accumulated content into a FlowElem.
func (b *FlowBuilder) Finish() foundations.Content {
	children := b.items.Finish()
	flow := &model.FlowElem{Children: children}
	out := foundations.PackElem(flow, firstSpan(children), "")
	b.items = BehavedBuilder{}
	b.lastWasParbreak = false
	return out
}
