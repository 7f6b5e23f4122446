// Builder: the recursive dispatcher and interrupt cascade (section
// 4.4).
package realize

import (
	"github.com/lindqvist/typstrealize/diag"
	"github.com/lindqvist/typstrealize/engine"
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/math"
	"github.com/lindqvist/typstrealize/library/model"
	"github.com/lindqvist/typstrealize/syntax"
)

// Builder dispatches incoming content to the nested cites ⊂ list ⊂ par
// ⊂ flow ⊂ doc hierarchy, realizing show rules along the way. A root
// Builder (constructed by RealizeRoot) additionally accepts pages and
// pagebreaks through doc; a block Builder (RealizeBlock) stops at
// flow.
type Builder struct {
	eng  *engine.Engine
	root bool

	cites CiteGroupBuilder
	list  ListBuilder
	par   ParBuilder
	flow  FlowBuilder
	doc   DocBuilder

	docSawContent bool
}

// NewRootBuilder creates a Builder that finalizes into a Document.
func NewRootBuilder(eng *engine.Engine) *Builder {
	return &Builder{eng: eng, root: true, doc: NewDocBuilder()}
}

// NewBlockBuilder creates a Builder that finalizes into a Flow and
// rejects Pagebreak content.
func NewBlockBuilder(eng *engine.Engine) *Builder {
	return &Builder{eng: eng, root: false}
}

// Accept is the recursive dispatcher (section 4.4 steps 1-7).
func (b *Builder) Accept(content foundations.Content, styles *foundations.StyleChain) error {
	if content.Empty() {
		return nil
	}

	// Step 1: math wrapping.
	if _, ok := content.Element.(foundations.LayoutMath); ok {
		if !foundations.Is[*math.EquationElem](content) {
			wrapped := foundations.PackElem(&math.EquationElem{Body: content, Block: false}, content.Span, "")
			return b.Accept(wrapped, styles)
		}
	}

	// Step 2: realization attempt.
	if newContent, ok, err := realizeStep(b.eng, content, styles); err != nil {
		return err
	} else if ok {
		b.eng.Route.Increase()
		defer b.eng.Route.Decrease()
		if err := b.eng.Route.CheckShowDepth(content.Span); err != nil {
			return err
		}
		return b.Accept(newContent, styles)
	}

	// Step 3: styled node.
	if child, local, ok := content.ToStyled(); ok {
		if err := b.interruptStyle(local, nil, styles); err != nil {
			return err
		}
		extended := styles.Chain(local)
		if err := b.Accept(child, extended); err != nil {
			return err
		}
		return b.interruptStyle(local, extended, styles)
	}

	// Step 4: sequence.
	if content.IsSequence() {
		for _, child := range content.Sequence {
			if err := b.Accept(child, styles); err != nil {
				return err
			}
		}
		return nil
	}

	// Step 5: try sub-builders in order, with the documented second
	// list.Accept retry after interrupt_list.
	if b.cites.Accept(content, styles) {
		return nil
	}
	if err := b.interruptCites(styles); err != nil {
		return err
	}
	if b.list.Accept(content, styles) {
		return nil
	}
	if err := b.interruptList(styles); err != nil {
		return err
	}
	if b.list.Accept(content, styles) {
		return nil
	}
	if b.par.Accept(content, styles) {
		return nil
	}
	if err := b.interruptPar(styles); err != nil {
		return err
	}
	if b.flow.Accept(content, styles) {
		return nil
	}

	// Step 6: pagebreak handling before doc.
	if pb, ok := content.Element.(*model.PagebreakElem); ok {
		if !b.root {
			return diag.Bail(content.Span, "pagebreaks not allowed inside containers")
		}
		keep := !pb.Weak
		var chainArg *foundations.StyleChain
		if keep {
			chainArg = styles
		}
		if err := b.interruptPage(chainArg, false); err != nil {
			return err
		}
		b.doc.Accept(content, styles)
		return nil
	}

	if b.root {
		if b.doc.Accept(content, styles) {
			return nil
		}
	}

	// Step 7: fallthrough.
	return diag.Bail(content.Span, "%s is not allowed here", elementNameOrUnknown(content.Element))
}

func elementNameOrUnknown(elem foundations.ContentElement) string {
	if name := elementName(elem); name != "" {
		return name
	}
	return "this element"
}

// interruptStyle enforces set-rule scoping (section 4.4): document and
// page set-rules are legal only at the root builder, and document
// set-rules only before any content exists anywhere in
// doc/flow/par/list; page, paragraph/alignment, and list/enum/terms
// set-rules force the matching interrupt.
func (b *Builder) interruptStyle(local *foundations.Styles, outer *foundations.StyleChain, current *foundations.StyleChain) error {
	if local == nil {
		return nil
	}
	if hasRule(local, "document") {
		if !b.root {
			return diag.Bail(syntax.Detached(), "document set rules are only allowed in the root")
		}
		if b.docSawContent || !b.par.IsEmpty() || !b.list.IsEmpty() || !b.flow.IsEmpty() {
			return diag.Bail(syntax.Detached(), "document set rules must appear before any content")
		}
	}
	if hasRule(local, "page") {
		if !b.root {
			return diag.Bail(syntax.Detached(), "page set rules are only allowed in the root")
		}
		if err := b.interruptPage(outer, false); err != nil {
			return err
		}
	}
	if hasRule(local, "par") || hasRule(local, "align") {
		if err := b.interruptPar(current); err != nil {
			return err
		}
	}
	if hasRule(local, "list") || hasRule(local, "enum") || hasRule(local, "terms") {
		if err := b.interruptList(current); err != nil {
			return err
		}
	}
	return nil
}

func hasRule(s *foundations.Styles, elem string) bool {
	for k := range s.Properties {
		if k.Elem == elem {
			return true
		}
	}
	for _, r := range s.Recipes {
		if es, ok := r.Selector.(foundations.ElemSelector); ok && es.Element == elem {
			return true
		}
	}
	return false
}

// interruptCites finalizes the citation group, if nonempty, feeding
// its product back through accept under the styles recorded at the
// first citation, then replays staged content in arrival order.
func (b *Builder) interruptCites(styles *foundations.StyleChain) error {
	if b.cites.IsEmpty() {
		return nil
	}
	groupStyles := b.cites.Styles()
	if groupStyles == nil {
		groupStyles = styles
	}
	product, staged := b.cites.Finish()
	if err := b.Accept(product, groupStyles); err != nil {
		return err
	}
	for _, s := range staged {
		if err := b.Accept(s, styles); err != nil {
			return err
		}
	}
	return nil
}

// interruptList cascades through interruptCites first, then finalizes
// the list builder and replays its staged content.
func (b *Builder) interruptList(styles *foundations.StyleChain) error {
	if err := b.interruptCites(styles); err != nil {
		return err
	}
	if b.list.IsEmpty() {
		return nil
	}
	product, staged := b.list.Finish()
	if err := b.Accept(product, styles); err != nil {
		return err
	}
	for _, s := range staged {
		if err := b.Accept(s, styles); err != nil {
			return err
		}
	}
	return nil
}

// interruptPar cascades through interruptList first, then finalizes
// the paragraph builder.
func (b *Builder) interruptPar(styles *foundations.StyleChain) error {
	if err := b.interruptList(styles); err != nil {
		return err
	}
	if b.par.IsEmpty() {
		return nil
	}
	product := b.par.Finish()
	return b.Accept(product, styles)
}

// interruptPage cascades through interruptPar first, then closes the
// current flow into a Page if it is worth keeping: styles is non-nil
// (an explicit request to keep, e.g. a non-weak pagebreak), the
// document builder's keepNext is set, or the flow contains at least
// one strong element.
func (b *Builder) interruptPage(styles *foundations.StyleChain, last bool) error {
	fallback := styles
	if fallback == nil {
		fallback = foundations.EmptyStyleChain()
	}
	if err := b.interruptPar(fallback); err != nil {
		return err
	}
	if b.flow.IsEmpty() && styles == nil && !b.doc.KeepNext() {
		return nil
	}
	keep := styles != nil || b.flow.HasStrong() || b.doc.KeepNext()
	if !keep {
		return nil
	}
	flow := b.flow.Finish()
	page := foundations.PackElem(&model.PageElem{Body: flow}, flow.Span, "")
	if !b.root {
		return nil
	}
	b.docSawContent = true
	return b.Accept(page, fallback)
}
