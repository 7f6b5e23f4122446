// Tag types for document introspection.
// Translated from typst-library/src/introspection/tag.rs.
//
// Location itself lives in library/foundations (foundations.Location)
// so that foundations.Base can hold one without an import cycle; this
// package supplies the Locator that derives locations from content.

package introspection

import "github.com/lindqvist/typstrealize/library/foundations"

// Tag represents a start or end marker for content in the document.
// Tags are used to track element locations after layout for
// introspection.
type Tag struct {
	Kind     TagKind
	Location foundations.Location
	Elem     foundations.ContentElement
	Key      uint64
	Flags    TagFlags
}

// TagKind indicates whether a tag is a start or end tag.
type TagKind int

const (
	TagStart TagKind = iota
	TagEnd
)

// TagFlags contains flags for tag behavior.
type TagFlags struct {
	Introspectable bool
	Tagged         bool
}

// Any returns true if any flag is set.
func (f TagFlags) Any() bool {
	return f.Introspectable || f.Tagged
}

// TagElem represents a tag element in content.
type TagElem struct {
	Tag Tag
}

func (*TagElem) IsContentElement() {}

// NewStartTag creates a start tag for an element.
func NewStartTag(elem foundations.ContentElement, loc foundations.Location, flags TagFlags) *TagElem {
	return &TagElem{Tag: Tag{Kind: TagStart, Location: loc, Elem: elem, Flags: flags}}
}

// NewEndTag creates an end tag for an element.
func NewEndTag(loc foundations.Location, key uint64, flags TagFlags) *TagElem {
	return &TagElem{Tag: Tag{Kind: TagEnd, Location: loc, Key: key, Flags: flags}}
}
