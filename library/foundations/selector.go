// Selector and Transformation types for the realization core.
// Translated in spirit from typst-library/src/foundations/selector.rs
// and styles.rs's Recipe/Transformation, with Func/closure-based show
// callables replaced by a plain Go function type since the scripting
// VM is out of scope here.

package foundations

import (
	"regexp"

	"github.com/lindqvist/typstrealize/syntax"
)

// Selector is a predicate over content, used by show-rule recipes.
// Matches Rust's Selector enum in selector.rs.
type Selector interface {
	isSelector()
}

// ElemSelector matches content of a specific element kind, identified
// by name (e.g. "heading", "strong"); Where optionally narrows the
// match to elements satisfying a field predicate.
type ElemSelector struct {
	Element string
	Where   func(ContentElement) bool
}

func (ElemSelector) isSelector() {}

// LabelSelector matches content carrying a specific label.
type LabelSelector struct {
	Label string
}

func (LabelSelector) isSelector() {}

// RegexSelector matches text content using a regular expression scoped
// to a single Text element (see tryApply).
type RegexSelector struct {
	Pattern *regexp.Regexp
}

func (RegexSelector) isSelector() {}

// OrSelector, AndSelector, BeforeSelector, AfterSelector, and
// LocationSelector are retained as selector kinds for completeness of
// the Selector sum type, but per section 4.3 are not valid at the
// realize call site: tryApply returns no match for any of them (they
// are the introspection engine's province).
type OrSelector struct{ Selectors []Selector }

func (OrSelector) isSelector() {}

type AndSelector struct{ Selectors []Selector }

func (AndSelector) isSelector() {}

type LocationSelector struct{ Location *Location }

func (LocationSelector) isSelector() {}

type BeforeSelector struct {
	Selector  Selector
	End       Selector
	Inclusive bool
}

func (BeforeSelector) isSelector() {}

type AfterSelector struct {
	Selector  Selector
	Start     Selector
	Inclusive bool
}

func (AfterSelector) isSelector() {}

// ----------------------------------------------------------------------------
// Transformation
// ----------------------------------------------------------------------------

// ShowFunc is the transform a recipe applies to the content it
// matched: a plain Go callable playing the role the Rust source gives
// a user show-rule closure. It takes the engine as an untyped first
// argument because the concrete engine type lives above foundations
// in the import graph (package engine depends on foundations via
// introspection); realize, which depends on both, passes its
// *engine.Engine in this argument, and a ShowFunc that needs it
// asserts the type.
type ShowFunc func(eng any, matched Content) (Content, error)

// Transformation is how a recipe rewrites matched content. Matches
// Rust's Transformation enum in styles.rs.
type Transformation interface {
	isTransformation()
}

// StyleTransformation is a "show-set": it merges a style map into the
// environment rather than replacing content.
type StyleTransformation struct {
	Styles *Styles
}

func (StyleTransformation) isTransformation() {}

// FuncTransformation applies a ShowFunc to the matched content.
type FuncTransformation struct {
	Func ShowFunc
}

func (FuncTransformation) isTransformation() {}

// ContentTransformation replaces matched content outright.
type ContentTransformation struct {
	Content Content
}

func (ContentTransformation) isTransformation() {}

// NoneTransformation hides the matched content (replaces it with
// nothing).
type NoneTransformation struct{}

func (NoneTransformation) isTransformation() {}

// ----------------------------------------------------------------------------
// Recipe
// ----------------------------------------------------------------------------

// Recipe is a (Selector, Transformation) pair contributed by the style
// chain. A nil Selector means an eager show rule applying immediately
// to whatever is current (not used by the realization core's recipe
// enumeration, which always dispatches through a selector).
type Recipe struct {
	Selector  Selector
	Transform Transformation
	Span      syntax.Span
}

// NewRecipe constructs a Recipe.
func NewRecipe(selector Selector, transform Transformation, span syntax.Span) *Recipe {
	return &Recipe{Selector: selector, Transform: transform, Span: span}
}

// IsStyleTransform reports whether the recipe is a show-set (as
// opposed to a content-rewriting show rule), used by applicable and
// realize's show-set accumulation step.
func (r *Recipe) IsStyleTransform() bool {
	_, ok := r.Transform.(StyleTransformation)
	return ok
}
