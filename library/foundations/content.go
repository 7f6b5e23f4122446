// Package foundations provides the content model shared by the
// realization core: the polymorphic Content node, its capability
// interfaces, the style chain, and selectors/recipes.
//
// File organization follows one concern per file:
//   - content.go: Content, ContentElement, capability interfaces, Guard
//   - styles.go: Styles, StyleChain, Recipe enumeration
//   - selector.go: Selector, Transformation, Recipe
//   - location.go: Location
package foundations

import "github.com/lindqvist/typstrealize/syntax"

// ContentElement is the marker every element kind implements. Concrete
// element kinds live in library/model, library/text, library/math.
type ContentElement interface {
	IsContentElement()
}

// Content is the polymorphic document node: it is either a single
// element, a sequence of children, or an element paired with a
// locally-scoped style map (a "styled" node). Exactly one of Element,
// Sequence, Styled is meaningful at a time; the zero Content is the
// empty sequence.
type Content struct {
	Element  ContentElement
	Sequence []Content
	Styled   *StyledNode

	Span  syntax.Span
	Label string
}

// StyledNode pairs a child content with locally-scoped styles.
type StyledNode struct {
	Child  Content
	Styles *Styles
}

// Empty reports whether c carries no element, sequence entries, or
// styled child.
func (c Content) Empty() bool {
	return c.Element == nil && len(c.Sequence) == 0 && c.Styled == nil
}

// IsSequence reports whether c is a sequence node.
func (c Content) IsSequence() bool {
	return c.Element == nil && c.Styled == nil
}

// ElemOf returns the element and true if c wraps exactly one element
// (not a sequence or styled node), matching the kind test `is::<K>` +
// downcast `to_packed::<K>` pattern used at the realize call site.
func ElemOf[K ContentElement](c Content) (K, bool) {
	var zero K
	if c.Element == nil {
		return zero, false
	}
	k, ok := c.Element.(K)
	return k, ok
}

// Is reports whether c wraps an element of kind K.
func Is[K ContentElement](c Content) bool {
	_, ok := ElemOf[K](c)
	return ok
}

// PackElem wraps a single element into Content, spanned and labeled.
func PackElem(elem ContentElement, span syntax.Span, label string) Content {
	return Content{Element: elem, Span: span, Label: label}
}

// Spanned returns a copy of c with its span replaced.
func (c Content) Spanned(span syntax.Span) Content {
	c.Span = span
	return c
}

// ToSequence returns the children of c if it is a sequence, or a
// single-element slice containing c otherwise.
func (c Content) ToSequence() []Content {
	if c.IsSequence() {
		return c.Sequence
	}
	return []Content{c}
}

// ToStyled returns c's styled child and style map if c is a styled
// node.
func (c Content) ToStyled() (Content, *Styles, bool) {
	if c.Styled == nil {
		return Content{}, nil, false
	}
	return c.Styled.Child, c.Styled.Styles, true
}

// StyledWithMap wraps content with a style map, matching Rust's
// `Content::styled_with_map`. An empty map returns content unchanged.
func StyledWithMap(content Content, styles *Styles) Content {
	if styles == nil || styles.IsEmpty() {
		return content
	}
	return Content{Styled: &StyledNode{Child: content, Styles: styles}}
}

// Seq builds a sequence node from children.
func Seq(children ...Content) Content {
	return Content{Sequence: children}
}

// Add concatenates two contents the way Rust's `Content + Content`
// does: flattening sequences on both sides into one new sequence.
func Add(a, b Content) Content {
	var out []Content
	if a.IsSequence() {
		out = append(out, a.Sequence...)
	} else if !a.Empty() {
		out = append(out, a)
	}
	if b.IsSequence() {
		out = append(out, b.Sequence...)
	} else if !b.Empty() {
		out = append(out, b)
	}
	return Content{Sequence: out}
}

// ----------------------------------------------------------------------------
// Guard
// ----------------------------------------------------------------------------

// Guard is a recipe depth index that has already fired on a content
// copy. Guard sets are stored as a small slice on the element wrapper,
// in the order the guards were added (not sorted): typical depth is
// tiny so a slice beats a map.
type Guard int

// Guarded returns a copy of elem with depth g added to its guard set.
// The input copy, not the transform's output, is guarded: the same
// recipe must not be able to match itself on what it produced.
func Guarded(elem ContentElement, g Guard) ContentElement {
	gb, ok := elem.(guardable)
	if !ok {
		return elem
	}
	return gb.WithGuard(g)
}

// IsGuarded reports whether elem already carries depth g in its guard
// set.
func IsGuarded(elem ContentElement, g Guard) bool {
	gb, ok := elem.(guardable)
	if !ok {
		return false
	}
	for _, have := range gb.Guards() {
		if have == g {
			return true
		}
	}
	return false
}

// guardable is implemented by element kinds whose guard set is tracked
// inline (via an embedded Base). Elements that never participate in
// show-rule matching need not implement it; Guarded/IsGuarded degrade
// to no-ops for them.
type guardable interface {
	Guards() []Guard
	WithGuard(Guard) ContentElement
}

// Base is embeddable by element kinds to pick up guard-set bookkeeping,
// the prepared flag, and an assigned Location, without repeating the
// same three fields in every element struct.
type Base struct {
	guards   []Guard
	prepared bool
	location *Location
}

// Guards returns the element's active guard set.
func (b *Base) Guards() []Guard { return b.guards }

// IsPrepared reports whether preparation has already run for this
// element.
func (b *Base) IsPrepared() bool { return b.prepared }

// MarkPrepared flips the prepared flag. Callers must only call it once
// per element lifetime (enforced by realize, not by Base itself).
func (b *Base) MarkPrepared() { b.prepared = true }

// GetLocation returns the assigned location, or nil if none was
// assigned.
func (b *Base) GetLocation() *Location { return b.location }

// SetLocation assigns a location to the element.
func (b *Base) SetLocation(loc Location) { b.location = &loc }

// CloneBase returns a shallow copy of b suitable for embedding in a
// freshly-cloned element: guards/prepared/location carry over; the
// caller mutates the copy, never the original, matching "preparation
// always materializes an owned copy before mutating".
func (b Base) CloneBase() Base {
	out := b
	out.guards = append([]Guard(nil), b.guards...)
	return out
}

// WithGuardBase returns a copy of b with g appended to its guard set,
// for use by an element kind's WithGuard method:
//
//	func (e *FooElem) WithGuard(g foundations.Guard) foundations.ContentElement {
//	    cp := *e
//	    cp.Base = cp.Base.WithGuardBase(g)
//	    return &cp
//	}
func (b Base) WithGuardBase(g Guard) Base {
	out := b.CloneBase()
	out.guards = append(out.guards, g)
	return out
}

// ----------------------------------------------------------------------------
// Capability interfaces
// ----------------------------------------------------------------------------

// Show marks an element kind with a built-in rewrite rule, used when no
// user recipe applies.
type Show interface {
	Show() Content
}

// ShowSet marks an element kind that contributes styles which apply to
// its own built-in realization (e.g. a heading setting a strong-
// emphasis delta for its body), queried only while the target is not yet
// prepared.
type ShowSet interface {
	ShowSet(chain *StyleChain) *Styles
}

// Synthesize marks an element kind with computed fields that must be
// populated once, during preparation, under the extended style chain.
type Synthesize interface {
	Synthesize(chain *StyleChain) error
}

// NeedsPreparation is queried by applicable/realize to decide whether
// an otherwise-unprepared element must still go through preparation
// even with no matching recipe (e.g. because it is Locatable or has a
// Synthesize step).
type NeedsPreparation interface {
	NeedsPreparation() bool
}

// Locatable marks an element kind that deserves a stable Location once
// prepared.
type Locatable interface {
	Locatable() bool
}

// Behave reports an element's behavior class for BehavedBuilder.
type Behave interface {
	Behaviour() Behaviour
}

// LayoutSingle marks an element kind that lays out to one fragment.
// The marker method is exported so element kinds in other packages
// (library/model, library/math) can implement it.
type LayoutSingle interface{ LayoutSingleMarker() }

// LayoutMultiple marks an element kind that may lay out to several
// fragments (columns, pages).
type LayoutMultiple interface{ LayoutMultipleMarker() }

// LayoutMath marks an element kind usable directly inside an equation
// without being wrapped.
type LayoutMath interface{ LayoutMathMarker() }
