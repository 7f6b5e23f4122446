package realize

import (
	"github.com/lindqvist/typstrealize/library/foundations"
	"github.com/lindqvist/typstrealize/library/introspection"
	"github.com/lindqvist/typstrealize/library/math"
	"github.com/lindqvist/typstrealize/library/model"
	"github.com/lindqvist/typstrealize/library/text"
)

// elementName returns the selector-facing name of an element kind,
// matching the names a user's show rule would target (e.g.
// `show heading: ...`). Used by ElemSelector matching in applicable.go
// and apply.go.
func elementName(elem foundations.ContentElement) string {
	switch elem.(type) {
	case *model.EmphElem:
		return "emph"
	case *model.StrongElem:
		return "strong"
	case *model.HeadingElem:
		return "heading"
	case *model.ParElem:
		return "par"
	case *model.ListItemElem:
		return "list.item"
	case *model.EnumItemElem:
		return "enum.item"
	case *model.TermItemElem:
		return "terms.item"
	case *model.ListElem:
		return "list"
	case *model.EnumElem:
		return "enum"
	case *model.TermsElem:
		return "terms"
	case *model.CiteElem:
		return "cite"
	case *model.CiteGroupElem:
		return "cite.group"
	case *model.DocumentElem:
		return "document"
	case *model.PageElem:
		return "page"
	case *model.PagebreakElem:
		return "pagebreak"
	case *model.FlowElem:
		return "flow"
	case *model.VElem:
		return "v"
	case *model.HElem:
		return "h"
	case *model.BoxElem:
		return "box"
	case *model.BlockElem:
		return "block"
	case *model.PlaceElem:
		return "place"
	case *model.ColbreakElem:
		return "colbreak"
	case *model.AlignElem:
		return "align"
	case *text.TextElem:
		return "text"
	case *text.SpaceElem:
		return "space"
	case *text.ParbreakElem:
		return "parbreak"
	case *text.LinebreakElem:
		return "linebreak"
	case *text.SmartQuoteElem:
		return "smartquote"
	case *math.EquationElem:
		return "equation"
	case *math.FracElem:
		return "frac"
	case *introspection.MetaElem:
		return "metadata"
	case *introspection.TagElem:
		return "tag"
	default:
		return ""
	}
}
