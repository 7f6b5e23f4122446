package introspection

import "github.com/lindqvist/typstrealize/library/foundations"

// MetaElem is the sentinel metadata entry attached during preparation
// (section 4.2 step 2.e): it carries a reference to the element it
// describes so that even if a show rule rewrites that element to
// nothing, the metadata (and hence the element's presence at its
// Location) survives in the output tree.
type MetaElem struct {
	foundations.Base
	Elem foundations.ContentElement
}

func (*MetaElem) IsContentElement() {}

// Behaviour is Invisible: Meta has no visual presence of its own, but
// ParBuilder/FlowBuilder still accept and retain it (section 4.6,
// 4.7).
func (e *MetaElem) Behaviour() foundations.Behaviour { return foundations.Invisible() }
