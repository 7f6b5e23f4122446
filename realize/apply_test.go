package realize

import (
	"regexp"
	"testing"

	"github.com/lindqvist/typstrealize/engine"
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/model"
	"github.com/lindqvist/typstrealize/library/text"
	"github.com/lindqvist/typstrealize/syntax"
)

func TestTryApplyElemSelectorNoMatchReturnsFalse(t *testing.T) {
	eng := engine.New(nil)
	box := foundations.PackElem(&model.BoxElem{}, syntax.Detached(), "")
	entry := foundations.RecipeEntry{
		Recipe: foundations.NewRecipe(foundations.ElemSelector{Element: "strong"}, foundations.NoneTransformation{}, syntax.Detached()),
		Depth:  1,
	}

	_, matched, err := tryApply(eng, box, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Fatal("a box must not match a strong selector")
	}
}

func TestTryApplyElemSelectorGuardsTheInput(t *testing.T) {
	eng := engine.New(nil)
	txt := &text.TextElem{Text: "x"}
	content := foundations.PackElem(txt, syntax.Detached(), "")

	var seen foundations.Content
	entry := foundations.RecipeEntry{
		Recipe: foundations.NewRecipe(
			foundations.ElemSelector{Element: "text"},
			foundations.FuncTransformation{Func: func(_ any, matched foundations.Content) (foundations.Content, error) {
				seen = matched
				return matched, nil
			}},
			syntax.Detached(),
		),
		Depth: 5,
	}

	out, matched, err := tryApply(eng, content, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatal("expected the text selector to match")
	}
	if !foundations.IsGuarded(seen.Element, 5) {
		t.Fatal("the copy handed to the transform must already carry the recipe's guard depth")
	}
	if foundations.IsGuarded(txt, 5) {
		t.Fatal("the original element must be left unguarded; only the copy is guarded")
	}
	if _, ok := foundations.ElemOf[*text.TextElem](out); !ok {
		t.Fatal("expected the transform's passthrough result to still be a TextElem")
	}
}

func TestTryApplyRegexSplitsAroundMatchAndGuardsOnlyTheMatch(t *testing.T) {
	eng := engine.New(nil)
	content := textContent("hello world")

	entry := foundations.RecipeEntry{
		Recipe: foundations.NewRecipe(
			foundations.RegexSelector{Pattern: regexp.MustCompile("world")},
			foundations.FuncTransformation{Func: func(_ any, matched foundations.Content) (foundations.Content, error) {
				return foundations.PackElem(&model.StrongElem{Body: matched}, matched.Span, ""), nil
			}},
			syntax.Detached(),
		),
		Depth: 2,
	}

	out, matched, err := tryApply(eng, content, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatal("expected the regex to match")
	}
	if !out.IsSequence() {
		t.Fatalf("expected a sequence of [unmatched prefix, transformed match], got %+v", out)
	}
	if len(out.Sequence) != 2 {
		t.Fatalf("expected exactly 2 pieces, got %d", len(out.Sequence))
	}
	prefix, ok := foundations.ElemOf[*text.TextElem](out.Sequence[0])
	if !ok || prefix.Text != "hello " {
		t.Fatalf("expected the first piece to be the unmatched prefix %q, got %+v", "hello ", out.Sequence[0])
	}
	strong, ok := foundations.ElemOf[*model.StrongElem](out.Sequence[1])
	if !ok {
		t.Fatalf("expected the second piece to be the transform's StrongElem, got %+v", out.Sequence[1])
	}
	matchedTxt, ok := foundations.ElemOf[*text.TextElem](strong.Body)
	if !ok || matchedTxt.Text != "world" {
		t.Fatalf("expected the matched text inside the transform result to be %q, got %+v", "world", strong.Body)
	}
	if !foundations.IsGuarded(matchedTxt, 2) {
		t.Fatal("the matched fragment must be guarded so the same recipe cannot refire on it")
	}
}

func TestTryApplyRegexNoMatchReturnsFalse(t *testing.T) {
	eng := engine.New(nil)
	content := textContent("hello")
	entry := foundations.RecipeEntry{
		Recipe: foundations.NewRecipe(foundations.RegexSelector{Pattern: regexp.MustCompile("xyz")}, foundations.NoneTransformation{}, syntax.Detached()),
		Depth:  1,
	}

	_, matched, err := tryApply(eng, content, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Fatal("expected no match for an absent pattern")
	}
}

func TestGraphemeBoundariesIncludesStartAndEnd(t *testing.T) {
	s := "ab"
	bounds := graphemeBoundaries(s)
	if bounds[0] != 0 || bounds[len(bounds)-1] != len(s) {
		t.Fatalf("expected boundaries to start at 0 and end at len(s)=%d, got %v", len(s), bounds)
	}
}

func TestSnapToBoundariesKeepsExactBoundaries(t *testing.T) {
	bounds := []int{0, 1, 2, 3}
	start, end := snapToBoundaries(bounds, 1, 2)
	if start != 1 || end != 2 {
		t.Fatalf("expected an exact boundary match to pass through unchanged, got (%d, %d)", start, end)
	}
}
