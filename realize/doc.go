// DocBuilder: accepts pages and pagebreaks at the document root
// (section 4.5).
package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/model"
)

// DocBuilder accumulates the document's pages. keepNext defaults to
// true so the very first page is retained even if its flow turned out
// empty; clearNext holds a pending parity constraint from the most
// recent pagebreak.
type DocBuilder struct {
	pages     []foundations.Content
	keepNext  bool
	clearNext *model.Parity
}

// NewDocBuilder creates a DocBuilder ready to retain its first page.
func NewDocBuilder() DocBuilder {
	return DocBuilder{keepNext: true}
}

// KeepNext reports whether the next closed flow should become a page
// even if it has no strong content.
func (b *DocBuilder) KeepNext() bool { return b.keepNext }

// Accept reports whether content is a Page or Pagebreak the document
// builder handles directly.
func (b *DocBuilder) Accept(content foundations.Content, styles *foundations.StyleChain) bool {
	switch elem := content.Element.(type) {
	case *model.PagebreakElem:
		b.keepNext = !elem.Weak
		to := elem.To
		b.clearNext = &to
		return true
	case *model.PageElem:
		page := content
		if b.clearNext != nil {
			parity := *b.clearNext
			b.clearNext = nil
			if !parity.Matches(len(b.pages) + 1) {
				blank := foundations.PackElem(&model.PageElem{}, content.Span, "")
				b.pages = append(b.pages, blank)
			}
		}
		b.pages = append(b.pages, page)
		b.keepNext = false
		return true
	default:
		return false
	}
}

// Finish finalizes the accumulated pages into a DocumentElem.
func (b *DocBuilder) Finish() foundations.Content {
	doc := &model.DocumentElem{Pages: b.pages}
	out := foundations.PackElem(doc, firstSpan(b.pages), "")
	b.pages = nil
	b.keepNext = true
	b.clearNext = nil
	return out
}
