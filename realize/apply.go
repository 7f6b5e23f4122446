// tryApply: apply one recipe to a target (section 4.3).
package realize

import (
	"sort"

	"github.com/rivo/uniseg"

	"github.com/lindqvist/typstrealize/engine"
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/text"
	"github.com/lindqvist/typstrealize/syntax"
)

// tryApply applies entry's recipe to target. It returns the produced
// content and true if the recipe's selector matched (even if the
// produced content is empty, e.g. a NoneTransformation), or false if
// the selector did not match at all.
func tryApply(eng *engine.Engine, target foundations.Content, entry foundations.RecipeEntry) (foundations.Content, bool, error) {
	recipe := entry.Recipe
	switch sel := recipe.Selector.(type) {
	case foundations.ElemSelector:
		if target.Element == nil || elementName(target.Element) != sel.Element {
			return foundations.Content{}, false, nil
		}
		if sel.Where != nil && !sel.Where(target.Element) {
			return foundations.Content{}, false, nil
		}
		guardedTarget := target
		guardedTarget.Element = foundations.Guarded(target.Element, entry.Depth)
		out, err := applyTransform(eng, recipe.Transform, guardedTarget)
		return out, true, err

	case foundations.LabelSelector:
		if target.Label == "" || target.Label != sel.Label {
			return foundations.Content{}, false, nil
		}
		guardedTarget := target
		guardedTarget.Element = foundations.Guarded(target.Element, entry.Depth)
		out, err := applyTransform(eng, recipe.Transform, guardedTarget)
		return out, true, err

	case foundations.RegexSelector:
		txt, ok := foundations.ElemOf[*text.TextElem](target)
		if !ok {
			return foundations.Content{}, false, nil
		}
		return tryApplyRegex(eng, target, txt, sel, entry, recipe.Transform)

	default:
		// Or, And, Location, Before, After: not valid at the realize
		// call site (section 4.3); handled by the introspection
		// engine, out of scope here.
		return foundations.Content{}, false, nil
	}
}

// applyTransform dispatches a recipe's Transformation over matched
// content. StyleTransformation never reaches here in practice (it is
// consumed earlier by realize's show-set accumulation step), but is
// handled defensively as a passthrough.
func applyTransform(eng *engine.Engine, t foundations.Transformation, matched foundations.Content) (foundations.Content, error) {
	switch tt := t.(type) {
	case foundations.FuncTransformation:
		return tt.Func(any(eng), matched)
	case foundations.ContentTransformation:
		return tt.Content, nil
	case foundations.NoneTransformation:
		return foundations.Content{}, nil
	case foundations.StyleTransformation:
		return matched, nil
	default:
		return foundations.Content{}, nil
	}
}

// tryApplyRegex scans a Text element's string for all non-overlapping
// matches (greedy, left-to-right), snapped onto grapheme-cluster
// boundaries so a pattern cannot split a multi-rune cluster, and
// interleaves fresh Text copies of the unmatched slices with the
// transform applied to a fresh, guarded Text copy of each match.
func tryApplyRegex(
	eng *engine.Engine,
	target foundations.Content,
	txt *text.TextElem,
	sel foundations.RegexSelector,
	entry foundations.RecipeEntry,
	transform foundations.Transformation,
) (foundations.Content, bool, error) {
	matches := sel.Pattern.FindAllStringIndex(txt.Text, -1)
	if len(matches) == 0 {
		return foundations.Content{}, false, nil
	}

	bounds := graphemeBoundaries(txt.Text)

	var pieces []foundations.Content
	pos := 0
	for _, m := range matches {
		start, end := snapToBoundaries(bounds, m[0], m[1])
		if start < pos {
			// Grapheme-snapping pulled this match's start back into
			// territory already emitted by the previous match; skip
			// the overlap rather than emit it twice.
			start = pos
		}
		if start > end {
			continue
		}
		if start > pos {
			pieces = append(pieces, freshText(txt.Text[pos:start], target.Span))
		}
		matchedElem := &text.TextElem{Text: txt.Text[start:end]}
		guarded := foundations.Guarded(matchedElem, entry.Depth)
		matchedContent := foundations.PackElem(guarded, target.Span, "")
		out, err := applyTransform(eng, transform, matchedContent)
		if err != nil {
			return foundations.Content{}, false, err
		}
		pieces = append(pieces, out)
		pos = end
	}
	if pos < len(txt.Text) {
		pieces = append(pieces, freshText(txt.Text[pos:], target.Span))
	}
	return foundations.Seq(pieces...), true, nil
}

func freshText(s string, span syntax.Span) foundations.Content {
	return foundations.PackElem(&text.TextElem{Text: s}, span, "")
}

// graphemeBoundaries returns every byte offset at which a grapheme
// cluster begins or ends in s, including 0 and len(s).
func graphemeBoundaries(s string) []int {
	bounds := []int{0}
	pos := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		pos += len(gr.Str())
		bounds = append(bounds, pos)
	}
	return bounds
}

// snapToBoundaries rounds start down and end up to the nearest
// grapheme-cluster boundary present in bounds.
func snapToBoundaries(bounds []int, start, end int) (int, int) {
	si := sort.SearchInts(bounds, start)
	if si == len(bounds) || bounds[si] != start {
		si--
	}
	if si < 0 {
		si = 0
	}
	ei := sort.SearchInts(bounds, end)
	if ei == len(bounds) {
		ei = len(bounds) - 1
	}
	return bounds[si], bounds[ei]
}
