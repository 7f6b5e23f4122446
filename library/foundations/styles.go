// Styles and the style chain for the realization core.
//
// Translated in spirit from typst-library/src/foundations/styles.rs, but
// narrowed to what the realization core actually consumes: a set of
// typed properties (set rules) plus an ordered list of recipes (show
// rules). There is no dynamic Value type here — properties are looked
// up by (element name, property name) and returned as `any`, cast by
// the caller, since the scripting value system is out of scope.

package foundations

import "github.com/lindqvist/typstrealize/syntax"

// Styles is one level of the style chain: a set of property entries
// from set-rules plus the show-rule recipes introduced at this level.
type Styles struct {
	Properties map[propertyKey]any
	Recipes    []*Recipe
}

type propertyKey struct {
	Elem string
	Name string
}

// NewStyles creates an empty style level.
func NewStyles() *Styles {
	return &Styles{}
}

// IsEmpty reports whether this level carries no properties or recipes.
func (s *Styles) IsEmpty() bool {
	return s == nil || (len(s.Properties) == 0 && len(s.Recipes) == 0)
}

// Set assigns a property at this style level.
func (s *Styles) Set(elem, name string, value any) {
	if s.Properties == nil {
		s.Properties = make(map[propertyKey]any)
	}
	s.Properties[propertyKey{elem, name}] = value
}

// AddRecipe appends a show-rule recipe at this style level.
func (s *Styles) AddRecipe(recipe *Recipe) {
	s.Recipes = append(s.Recipes, recipe)
}

// Merge folds other's properties and recipes into s (other wins on
// conflicting property keys), used by realize's show-set accumulator.
func (s *Styles) Merge(other *Styles) {
	if other == nil {
		return
	}
	for k, v := range other.Properties {
		s.Set(k.Elem, k.Name, v)
	}
	s.Recipes = append(s.Recipes, other.Recipes...)
}

// ----------------------------------------------------------------------------
// StyleChain
// ----------------------------------------------------------------------------

// StyleChain is a persistent cons-list of Styles levels: each Chain
// call prepends a new innermost level without mutating the parent, so
// sibling subtrees can extend the same parent chain independently.
type StyleChain struct {
	styles *Styles
	parent *StyleChain
}

// NewStyleChain creates a chain whose single level is styles.
func NewStyleChain(styles *Styles) *StyleChain {
	return &StyleChain{styles: styles}
}

// EmptyStyleChain returns a chain with no levels.
func EmptyStyleChain() *StyleChain {
	return &StyleChain{}
}

// Chain extends sc with inner as the new innermost level. A nil or
// empty inner returns sc unchanged (no level is pushed for an empty
// style map, keeping depth indices stable).
func (sc *StyleChain) Chain(inner *Styles) *StyleChain {
	if inner.IsEmpty() {
		return sc
	}
	return &StyleChain{styles: inner, parent: sc}
}

// IsEmpty reports whether the chain has no levels with content.
func (sc *StyleChain) IsEmpty() bool {
	for c := sc; c != nil; c = c.parent {
		if !c.styles.IsEmpty() {
			return false
		}
	}
	return true
}

// Get looks up a property by walking the chain innermost-first,
// returning the first match and true, or (nil, false).
func (sc *StyleChain) Get(elem, name string) (any, bool) {
	for c := sc; c != nil; c = c.parent {
		if c.styles == nil {
			continue
		}
		if v, ok := c.styles.Properties[propertyKey{elem, name}]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetWithDefault is Get with a fallback value.
func (sc *StyleChain) GetWithDefault(elem, name string, def any) any {
	if v, ok := sc.Get(elem, name); ok {
		return v
	}
	return def
}

// RecipeEntry pairs a recipe with its stable depth index: count-from-
// the-innermost position in the chain, where the outermost recipe in
// the whole chain is depth 1 and the innermost is depth N.
type RecipeEntry struct {
	Recipe *Recipe
	Depth  Guard
}

// Recipes enumerates every recipe in the chain in innermost-first
// order, each tagged with a stable per-walk depth index. Depth indices
// are assigned from the total count N down to 1 as enumeration moves
// from innermost to outermost, matching section 3's "N, N-1, ..., 1"
// rule.
func (sc *StyleChain) Recipes() []RecipeEntry {
	var levels []*StyleChain
	for c := sc; c != nil; c = c.parent {
		if c.styles != nil && len(c.styles.Recipes) > 0 {
			levels = append(levels, c)
		}
	}
	total := 0
	for _, lvl := range levels {
		total += len(lvl.styles.Recipes)
	}
	entries := make([]RecipeEntry, 0, total)
	depth := Guard(total)
	for _, lvl := range levels {
		// Within one level, recipes were appended in source order;
		// the most-recently-added (last) recipe at a level is
		// logically innermost relative to its siblings.
		recipes := lvl.styles.Recipes
		for i := len(recipes) - 1; i >= 0; i-- {
			entries = append(entries, RecipeEntry{Recipe: recipes[i], Depth: depth})
			depth--
		}
	}
	return entries
}

// Element names a content kind for ShowSet/set-rule scoping checks
// (e.g. interrupt_style's "local set rules for Document").
type Element struct {
	Name string
}

// StyleRule is kept as a named type so callers can distinguish "this
// span belongs to a set rule" when reporting diagnostics, even though
// the realization core itself only needs the Span.
type StyleRule struct {
	Elem string
	Name string
	Span syntax.Span
}
