// realize: the single-step rewriter (section 4.2).
package realize

import (
	"reflect"

	"github.com/lindqvist/typstrealize/engine"
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/introspection"
)

// realizeStep rewrites target by one step under styles, returning the
// new content and true if a rewrite occurred, or (zero, false) if
// nothing applies. It never recurses on its own output; Builder.Accept
// owns the re-acceptance loop and the depth counter.
func realizeStep(eng *engine.Engine, target foundations.Content, styles *foundations.StyleChain) (foundations.Content, bool, error) {
	if target.Element == nil {
		return foundations.Content{}, false, nil
	}

	prepared := isPrepared(target.Element)

	// Step 1: show-set accumulation.
	var accumulated *foundations.Styles
	if !prepared {
		accumulated = foundations.NewStyles()
		for _, entry := range styles.Recipes() {
			if !entry.Recipe.IsStyleTransform() {
				continue
			}
			if foundations.IsGuarded(target.Element, entry.Depth) {
				continue
			}
			if !matchSelector(entry.Recipe.Selector, target) {
				continue
			}
			st := entry.Recipe.Transform.(foundations.StyleTransformation)
			accumulated.Merge(st.Styles)
		}
		if ss, ok := target.Element.(foundations.ShowSet); ok {
			extended := styles.Chain(accumulated)
			accumulated.Merge(ss.ShowSet(extended))
		}
	}

	// Step 2: preparation.
	needsPrep := false
	if np, ok := target.Element.(foundations.NeedsPreparation); ok {
		needsPrep = np.NeedsPreparation()
	}
	if needsPrep || !accumulated.IsEmpty() {
		elem := cloneElement(target.Element)

		locatable := false
		if l, ok := elem.(foundations.Locatable); ok {
			locatable = l.Locatable()
		}
		if locatable || target.Label != "" {
			loc := eng.Locator.Locate(elementName(elem), target.Label)
			if le, ok := elem.(locationSettable); ok {
				le.SetLocation(loc)
			}
		}

		if s, ok := elem.(foundations.Synthesize); ok {
			extended := styles.Chain(accumulated)
			if err := s.Synthesize(extended); err != nil {
				return foundations.Content{}, false, err
			}
		}

		if mp, ok := elem.(markable); ok {
			mp.MarkPrepared()
		}

		out := foundations.PackElem(elem, target.Span, target.Label)
		if le, ok := elem.(locationGettable); ok {
			if le.GetLocation() != nil {
				// A sentinel metadata element rides alongside elem so
				// that even if the show rule that fires next produces
				// empty output, elem's presence at its location still
				// survives in the output tree.
				meta := &introspection.MetaElem{Elem: elem}
				out = foundations.Add(out, foundations.PackElem(meta, target.Span, ""))
			}
		}
		return foundations.StyledWithMap(out, accumulated), true, nil
	}

	// Step 3: show recipe.
	for _, entry := range styles.Recipes() {
		if entry.Recipe.IsStyleTransform() {
			continue
		}
		if foundations.IsGuarded(target.Element, entry.Depth) {
			continue
		}
		out, matched, err := tryApply(eng, target, entry)
		if err != nil {
			return foundations.Content{}, false, err
		}
		if matched {
			return out, true, nil
		}
	}

	// Step 4: built-in show.
	if show, ok := target.Element.(foundations.Show); ok {
		return show.Show(), true, nil
	}

	// Step 5: no rewrite.
	return foundations.Content{}, false, nil
}

func isPrepared(elem foundations.ContentElement) bool {
	p, ok := elem.(interface{ IsPrepared() bool })
	return ok && p.IsPrepared()
}

type markable interface{ MarkPrepared() }
type locationSettable interface{ SetLocation(foundations.Location) }
type locationGettable interface{ GetLocation() *foundations.Location }

// cloneElement materializes an owned copy of elem so preparation never
// mutates content another part of the tree still references (section
// 4.2 step 2.a, section 5's "preparation always materializes an owned
// copy before mutating"). Every element kind is a pointer to a plain
// struct embedding foundations.Base, so a shallow value copy behind a
// fresh pointer is sufficient; there are no further owned pointers
// inside an element that preparation needs to deep-copy.
//
// Kinds with a WithGuard method (already a shallow-copy-behind-a-
// fresh-pointer) are copied through it with guard 0, a depth value no
// real recipe ever uses (Recipes() assigns depth indices starting at
// 1), so the clone is indistinguishable from the original with respect
// to every real guard check. Other kinds are copied by reflection.
func cloneElement(elem foundations.ContentElement) foundations.ContentElement {
	if c, ok := elem.(interface {
		WithGuard(foundations.Guard) foundations.ContentElement
	}); ok {
		return c.WithGuard(0)
	}
	v := reflect.ValueOf(elem)
	if v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Struct {
		cp := reflect.New(v.Elem().Type())
		cp.Elem().Set(v.Elem())
		if out, ok := cp.Interface().(foundations.ContentElement); ok {
			return out
		}
	}
	return elem
}
