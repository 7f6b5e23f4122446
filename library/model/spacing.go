// Vertical and horizontal spacing elements.
// Translated from typst-library/src/layout/spacing.rs

package model

import "github.com/lindqvist/typstrealize/library/foundations"

// VElem is vertical spacing inserted directly into a flow (section
// 4.6: "V, Colbreak, Meta, Place -> pushed verbatim"). Weak spacing
// may be overridden or annihilated by BehavedBuilder join rules;
// non-weak spacing is Strong.
type VElem struct {
	foundations.Base
	Amount float64
	// WeakLevel > 0 marks this as Weak(WeakLevel); 0 means Strong.
	WeakLevel int
}

func (*VElem) IsContentElement() {}

func (e *VElem) Behaviour() foundations.Behaviour {
	if e.WeakLevel > 0 {
		return foundations.Weak(e.WeakLevel)
	}
	return foundations.Strong()
}

// HElem is horizontal spacing inserted inline within a paragraph.
type HElem struct {
	foundations.Base
	Amount    float64
	WeakLevel int
}

func (*HElem) IsContentElement() {}

func (e *HElem) Behaviour() foundations.Behaviour {
	if e.WeakLevel > 0 {
		return foundations.Weak(e.WeakLevel)
	}
	return foundations.Strong()
}
