// Package realize implements the content realization core: turning a
// tree of show rules, style recipes, and raw content into the fully
// expanded, grouped structure a layout engine can consume, without
// performing any layout itself.
package realize

import (
	"github.com/lindqvist/typstrealize/engine"
	"github.com/lindqvist/typstrealize/library/foundations"
)

// RealizeRoot is the top-level entry point: it finalizes content into
// a Document element whose Pages is the sequence DocBuilder emitted.
func RealizeRoot(eng *engine.Engine, content foundations.Content, styles *foundations.StyleChain) (foundations.Content, error) {
	b := NewRootBuilder(eng)
	if err := b.Accept(content, styles); err != nil {
		return foundations.Content{}, err
	}
	if err := b.interruptPage(styles, true); err != nil {
		return foundations.Content{}, err
	}
	return b.doc.Finish(), nil
}

// RealizeBlock is the container-body entry point. If content is
// already multi-layoutable and no recipe in styles would change it,
// it is returned unchanged rather than wrapped in a redundant flow.
// Otherwise content is built up through cites/list/par/flow and the
// finalized Flow element is returned.
func RealizeBlock(eng *engine.Engine, content foundations.Content, styles *foundations.StyleChain) (foundations.Content, error) {
	if _, ok := content.Element.(foundations.LayoutMultiple); ok {
		if !Applicable(content, styles) {
			return content, nil
		}
	}

	b := NewBlockBuilder(eng)
	if err := b.Accept(content, styles); err != nil {
		return foundations.Content{}, err
	}
	if err := b.interruptPar(styles); err != nil {
		return foundations.Content{}, err
	}
	return b.flow.Finish(), nil
}
