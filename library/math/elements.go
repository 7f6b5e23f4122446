// Math element kinds the realization core exercises directly: the
// Equation wrapper itself, and one LayoutMath-marked inline kind
// (Frac) used to demonstrate Builder.Accept's math-wrapping step
// (section 4.4 step 1). A richer math package (Attach, Lr, AlignPoint,
// Primes, Limits, Accent) lays out equation internals, a layout-engine
// concern no realize/ operation reaches; not carried forward (see
// DESIGN.md).
package math

import "github.com/lindqvist/typstrealize/library/foundations"

// EquationElem is a mathematical equation. Builder.Accept wraps any
// LayoutMath content that is not already an EquationElem in one of
// these before continuing.
type EquationElem struct {
	foundations.Base
	Body  foundations.Content
	Block bool
}

func (*EquationElem) IsContentElement() {}

func (e *EquationElem) Behaviour() foundations.Behaviour { return foundations.Strong() }
func (e *EquationElem) LayoutSingleMarker()              {}
func (e *EquationElem) LayoutMathMarker()                {}

// FracElem is a fraction: numerator over denominator. It implements
// LayoutMath so bare math content reaching Builder.Accept outside an
// equation gets auto-wrapped.
type FracElem struct {
	foundations.Base
	Num   foundations.Content
	Denom foundations.Content
}

func (*FracElem) IsContentElement()   {}
func (e *FracElem) LayoutMathMarker() {}
