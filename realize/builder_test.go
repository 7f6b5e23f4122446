package realize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/lindqvist/typstrealize/engine"
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/introspection"
	"github.com/lindqvist/typstrealize/library/model"
	"github.com/lindqvist/typstrealize/library/text"
	"github.com/lindqvist/typstrealize/syntax"
)

func spaceContent() foundations.Content {
	return foundations.PackElem(&text.SpaceElem{}, syntax.Detached(), "")
}

func parbreakContent() foundations.Content {
	return foundations.PackElem(&text.ParbreakElem{}, syntax.Detached(), "")
}

func TestRealizeBlockPlainTextBecomesParagraph(t *testing.T) {
	eng := engine.New(nil)
	out, err := RealizeBlock(eng, textContent("hello"), foundations.EmptyStyleChain())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow, ok := foundations.ElemOf[*model.FlowElem](out)
	if !ok {
		t.Fatalf("expected a FlowElem, got %+v", out)
	}

	var pars []*model.ParElem
	for _, child := range flow.Children {
		if par, ok := foundations.ElemOf[*model.ParElem](child); ok {
			pars = append(pars, par)
		}
	}
	if len(pars) != 1 {
		t.Fatalf("expected exactly one paragraph in the flow, got %d", len(pars))
	}
	if len(pars[0].Children) != 1 {
		t.Fatalf("expected one inline child in the paragraph, got %d", len(pars[0].Children))
	}
	txt, ok := foundations.ElemOf[*text.TextElem](pars[0].Children[0])
	if !ok || txt.Text != "hello" {
		t.Fatalf("expected the paragraph to contain %q, got %+v", "hello", pars[0].Children[0])
	}
}

func TestRealizeBlockRegexShowRuleSplitsAndTransforms(t *testing.T) {
	eng := engine.New(nil)
	styles := chainWithRecipe(
		foundations.RegexSelector{Pattern: regexp.MustCompile("world")},
		foundations.FuncTransformation{Func: func(_ any, matched foundations.Content) (foundations.Content, error) {
			return foundations.PackElem(&model.StrongElem{Body: matched}, matched.Span, ""), nil
		}},
	)

	out, err := RealizeBlock(eng, textContent("hello world"), styles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow, ok := foundations.ElemOf[*model.FlowElem](out)
	if !ok {
		t.Fatalf("expected a FlowElem, got %+v", out)
	}
	var par *model.ParElem
	for _, child := range flow.Children {
		if p, ok := foundations.ElemOf[*model.ParElem](child); ok {
			par = p
		}
	}
	if par == nil {
		t.Fatal("expected a paragraph in the flow")
	}
	if len(par.Children) != 2 {
		t.Fatalf("expected the prefix and the transformed match as two inline children, got %d: %+v", len(par.Children), par.Children)
	}
	prefix, ok := foundations.ElemOf[*text.TextElem](par.Children[0])
	if !ok || prefix.Text != "hello " {
		t.Fatalf("expected the unmatched prefix %q, got %+v", "hello ", par.Children[0])
	}
	// StrongElem dissolves via its built-in Show, so by the time it
	// reaches the paragraph it is plain inline text again.
	matchedTxt, ok := foundations.ElemOf[*text.TextElem](par.Children[1])
	if !ok || matchedTxt.Text != "world" {
		t.Fatalf("expected the matched text to have dissolved into plain text %q, got %+v", "world", par.Children[1])
	}
}

func TestRealizeBlockSelfMatchingRecipeGuardsItsOwnOutput(t *testing.T) {
	eng := engine.New(nil)
	// An identity transform on "strong": without the guard on the input
	// copy this would refire on its own output forever.
	styles := chainWithRecipe(
		foundations.ElemSelector{Element: "strong"},
		foundations.FuncTransformation{Func: func(_ any, matched foundations.Content) (foundations.Content, error) {
			return matched, nil
		}},
	)

	strong := foundations.PackElem(&model.StrongElem{Body: textContent("x")}, syntax.Detached(), "")
	out, err := RealizeBlock(eng, strong, styles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow, ok := foundations.ElemOf[*model.FlowElem](out)
	if !ok {
		t.Fatalf("expected a FlowElem, got %+v", out)
	}
	var par *model.ParElem
	for _, child := range flow.Children {
		if p, ok := foundations.ElemOf[*model.ParElem](child); ok {
			par = p
		}
	}
	if par == nil || len(par.Children) != 1 {
		t.Fatalf("expected a single-paragraph result, got %+v", flow.Children)
	}
	txt, ok := foundations.ElemOf[*text.TextElem](par.Children[0])
	if !ok || txt.Text != "x" {
		t.Fatalf("expected the strong body to dissolve down to plain text %q, got %+v", "x", par.Children[0])
	}
}

func TestRealizeBlockTightListStaysTight(t *testing.T) {
	eng := engine.New(nil)
	content := foundations.Seq(
		foundations.PackElem(&model.ListItemElem{Body: textContent("a")}, syntax.Detached(), ""),
		spaceContent(),
		foundations.PackElem(&model.ListItemElem{Body: textContent("b")}, syntax.Detached(), ""),
	)

	out, err := RealizeBlock(eng, content, foundations.EmptyStyleChain())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow, ok := foundations.ElemOf[*model.FlowElem](out)
	if !ok {
		t.Fatalf("expected a FlowElem, got %+v", out)
	}
	var list *model.ListElem
	for _, child := range flow.Children {
		if l, ok := foundations.ElemOf[*model.ListElem](child); ok {
			list = l
		}
	}
	if list == nil {
		t.Fatal("expected a ListElem in the flow")
	}
	if !list.Tight {
		t.Fatal("a list with only space between items must stay tight")
	}
	if len(list.Children) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Children))
	}
}

func TestRealizeBlockParbreakBetweenItemsLoosensList(t *testing.T) {
	eng := engine.New(nil)
	content := foundations.Seq(
		foundations.PackElem(&model.ListItemElem{Body: textContent("a")}, syntax.Detached(), ""),
		parbreakContent(),
		foundations.PackElem(&model.ListItemElem{Body: textContent("b")}, syntax.Detached(), ""),
	)

	out, err := RealizeBlock(eng, content, foundations.EmptyStyleChain())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow, ok := foundations.ElemOf[*model.FlowElem](out)
	if !ok {
		t.Fatalf("expected a FlowElem, got %+v", out)
	}
	var list *model.ListElem
	for _, child := range flow.Children {
		if l, ok := foundations.ElemOf[*model.ListElem](child); ok {
			list = l
		}
	}
	if list == nil {
		t.Fatal("expected a ListElem in the flow")
	}
	if list.Tight {
		t.Fatal("a parbreak between items must loosen the list")
	}
}

func TestRealizeRootPagebreakClosesPage(t *testing.T) {
	eng := engine.New(nil)
	content := foundations.Seq(
		textContent("first"),
		foundations.PackElem(&model.PagebreakElem{}, syntax.Detached(), ""),
		textContent("second"),
	)

	out, err := RealizeRoot(eng, content, foundations.EmptyStyleChain())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, ok := foundations.ElemOf[*model.DocumentElem](out)
	if !ok {
		t.Fatalf("expected a DocumentElem, got %+v", out)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected a pagebreak to produce 2 pages, got %d", len(doc.Pages))
	}
	for _, p := range doc.Pages {
		if _, ok := foundations.ElemOf[*model.PageElem](p); !ok {
			t.Fatalf("expected every entry to be a PageElem, got %+v", p)
		}
	}
}

func TestRealizeRootDocumentSetRuleAfterContentErrors(t *testing.T) {
	eng := engine.New(nil)
	docStyles := foundations.NewStyles()
	docStyles.Set("document", "title", "Untitled")

	content := foundations.Add(
		textContent("hello"),
		foundations.StyledWithMap(foundations.Content{}, docStyles),
	)

	_, err := RealizeRoot(eng, content, foundations.EmptyStyleChain())
	if err == nil {
		t.Fatal("expected an error for a document set-rule arriving after content")
	}
	if !strings.Contains(err.Error(), "document set rules must appear before any content") {
		t.Fatalf("expected the document-set-rule-ordering error, got: %v", err)
	}
}

func TestRealizeBlockCitationGroupingDissolvesToBracketedKeys(t *testing.T) {
	eng := engine.New(nil)
	content := foundations.Seq(
		foundations.PackElem(&model.CiteElem{Key: "foo"}, syntax.Detached(), ""),
		spaceContent(),
		foundations.PackElem(&model.CiteElem{Key: "bar"}, syntax.Detached(), ""),
	)

	out, err := RealizeBlock(eng, content, foundations.EmptyStyleChain())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow, ok := foundations.ElemOf[*model.FlowElem](out)
	if !ok {
		t.Fatalf("expected a FlowElem, got %+v", out)
	}
	var par *model.ParElem
	for _, child := range flow.Children {
		if p, ok := foundations.ElemOf[*model.ParElem](child); ok {
			par = p
		}
	}
	// Each prepared citation carries a metadata sentinel; the group
	// builder stages those and replays them after the group's text.
	if par == nil || len(par.Children) != 3 {
		t.Fatalf("expected the group's text followed by the two citations' metadata, got %+v", flow.Children)
	}
	txt, ok := foundations.ElemOf[*text.TextElem](par.Children[0])
	if !ok || txt.Text != "[foo, bar]" {
		t.Fatalf("expected the grouped citations to render as %q, got %+v", "[foo, bar]", par.Children[0])
	}
	for _, meta := range par.Children[1:] {
		if _, ok := foundations.ElemOf[*introspection.MetaElem](meta); !ok {
			t.Fatalf("expected replayed citation metadata after the group, got %+v", meta)
		}
	}
}

// loopElem is a test-only element whose Show unconditionally rewraps
// itself, used to exercise the show-rule recursion guard.
type loopElem struct{ foundations.Base }

func (*loopElem) IsContentElement() {}
func (*loopElem) Show() foundations.Content {
	return foundations.PackElem(&loopElem{}, syntax.Detached(), "")
}

func TestRealizeBlockRecursionOverflowReturnsError(t *testing.T) {
	eng := engine.New(&engine.Config{MaxShowRuleDepth: 5})
	content := foundations.PackElem(&loopElem{}, syntax.Detached(), "")

	_, err := RealizeBlock(eng, content, foundations.EmptyStyleChain())
	if err == nil {
		t.Fatal("expected a show-rule depth overflow error")
	}
	if !strings.Contains(err.Error(), "maximum show rule depth exceeded") {
		t.Fatalf("expected the depth-overflow error, got: %v", err)
	}
}
