package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/syntax"
)

// firstSpan picks a representative source span for a synthesized
// wrapper (Paragraph, Flow, Page, Document): the first non-detached
// span among visible (non-Invisible) children, falling back to
// Detached (section 4.10).
func firstSpan(children []foundations.Content) syntax.Span {
	spans := make([]syntax.Span, 0, len(children))
	for _, c := range children {
		if isInvisible(c) {
			continue
		}
		spans = append(spans, c.Span)
	}
	return syntax.FindSpan(spans)
}

// isInvisible reports whether c's element (if any) behaves as
// Invisible. Sequence and styled nodes, and elements with no Behave
// capability, are treated as visible.
func isInvisible(c foundations.Content) bool {
	if c.Element == nil {
		return false
	}
	b, ok := c.Element.(foundations.Behave)
	if !ok {
		return false
	}
	return b.Behaviour().IsInvisible()
}
