// BehavedBuilder: an ordered accumulator that joins adjacent content
// according to its behaviour class (section 3's Behave capability).
//
// This file has no surviving upstream counterpart in the retrieval
// pack (behave.rs was not present); it is reconstructed from spec.md
// sections 3, 4.6, 9 and the SPEC_FULL supplement note on weak-level
// comparison. See DESIGN.md's Open Question entry for the exact
// choices made.
package realize

import "github.com/lindqvist/typstrealize/library/foundations"

type behavedItem struct {
	content   foundations.Content
	behaviour foundations.Behaviour
}

// BehavedBuilder accumulates content in order, resolving weak/strong/
// supportive/destructive/invisible interactions as each item arrives
// rather than in a second pass.
type BehavedBuilder struct {
	items []behavedItem
}

// Push adds content with the given behaviour, applying the join rules:
//
//   - Destructive content first consumes (discards) any trailing run
//     of Weak or Supportive items (Invisible items in that run are
//     skipped over, not discarded, and remain in place).
//   - Weak content is merged with an immediately preceding Weak item:
//     the higher level wins; on a tie the new (later) one wins. If the
//     preceding non-invisible item is not Weak, the new item is simply
//     appended (pending a possible future merge or destructive wipe).
//   - Strong, Supportive, and Invisible content is always appended.
func (b *BehavedBuilder) Push(content foundations.Content, behaviour foundations.Behaviour) {
	switch {
	case behaviour.IsDestructive():
		b.consumeTrailingWeakOrSupportive()
		b.items = append(b.items, behavedItem{content, behaviour})
	case behaviour.IsWeak():
		if i, ok := b.lastSignificant(); ok && b.items[i].behaviour.IsWeak() {
			if behaviour.Level >= b.items[i].behaviour.Level {
				b.items[i] = behavedItem{content, behaviour}
			}
			return
		}
		b.items = append(b.items, behavedItem{content, behaviour})
	default:
		b.items = append(b.items, behavedItem{content, behaviour})
	}
}

// lastSignificant returns the index of the last item that is not
// Invisible, skipping over any trailing invisible run.
func (b *BehavedBuilder) lastSignificant() (int, bool) {
	for i := len(b.items) - 1; i >= 0; i-- {
		if !b.items[i].behaviour.IsInvisible() {
			return i, true
		}
	}
	return 0, false
}

func (b *BehavedBuilder) consumeTrailingWeakOrSupportive() {
	keep := make([]bool, len(b.items))
	for i := range keep {
		keep[i] = true
	}
	for i := len(b.items) - 1; i >= 0; i-- {
		beh := b.items[i].behaviour
		if beh.IsInvisible() {
			continue
		}
		if beh.IsWeak() || beh.IsSupportive() {
			keep[i] = false
			continue
		}
		break
	}
	filtered := b.items[:0]
	for i, it := range b.items {
		if keep[i] {
			filtered = append(filtered, it)
		}
	}
	b.items = filtered
}

// IsEmpty reports whether nothing has been pushed.
func (b *BehavedBuilder) IsEmpty() bool { return len(b.items) == 0 }

// HasStrong reports whether any accumulated item is Strong, used by
// interrupt_page to decide whether a flow is worth keeping as a page.
func (b *BehavedBuilder) HasStrong() bool {
	for _, it := range b.items {
		if it.behaviour.IsStrong() {
			return true
		}
	}
	return false
}

// Finish trims a leading or trailing Weak item (weak spacing does not
// survive at a flow's own boundary) and returns the accumulated
// content in order.
func (b *BehavedBuilder) Finish() []foundations.Content {
	items := b.items
	for len(items) > 0 && items[0].behaviour.IsWeak() {
		items = items[1:]
	}
	for len(items) > 0 && items[len(items)-1].behaviour.IsWeak() {
		items = items[:len(items)-1]
	}
	out := make([]foundations.Content, len(items))
	for i, it := range items {
		out[i] = it.content
	}
	return out
}
