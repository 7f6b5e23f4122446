// Applicable: whether any recipe in styles could fire on target,
// without actually firing one (section 4.1).
package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/text"
)

// Applicable reports whether realizing target under styles would
// change it: it needs preparation, it has a built-in Show, or some
// unguarded recipe matches it (a show-set recipe counts only while
// target is not yet prepared).
func Applicable(target foundations.Content, styles *foundations.StyleChain) bool {
	if target.Element == nil {
		return false
	}
	if np, ok := target.Element.(foundations.NeedsPreparation); ok && np.NeedsPreparation() {
		return true
	}
	if _, ok := target.Element.(foundations.Show); ok {
		return true
	}
	prepared := isPrepared(target.Element)
	for _, entry := range styles.Recipes() {
		if foundations.IsGuarded(target.Element, entry.Depth) {
			continue
		}
		if entry.Recipe.IsStyleTransform() && prepared {
			// A show-set recipe only changes an element while it is
			// still unprepared; once prepared it is inert.
			continue
		}
		if matchSelector(entry.Recipe.Selector, target) {
			return true
		}
	}
	return false
}

// matchSelector reports whether target matches sel, independent of any
// transform. Shared by Applicable and realizeStep's show-set
// accumulation (realize.go); tryApply (apply.go) performs the same
// checks inline.
func matchSelector(sel foundations.Selector, target foundations.Content) bool {
	switch s := sel.(type) {
	case foundations.ElemSelector:
		if target.Element == nil || elementName(target.Element) != s.Element {
			return false
		}
		return s.Where == nil || s.Where(target.Element)
	case foundations.LabelSelector:
		return target.Label != "" && target.Label == s.Label
	case foundations.RegexSelector:
		txt, ok := foundations.ElemOf[*text.TextElem](target)
		if !ok {
			return false
		}
		return s.Pattern.MatchString(txt.Text)
	default:
		// Or, And, Location, Before, After: not valid at the realize
		// call site (section 4.3).
		return false
	}
}
