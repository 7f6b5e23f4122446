// Package diag provides the error types the realization core returns.
//
// Modeled on the SpannedError/HintedError/TracedError triad from
// eval/access.go: diagnostics are values, not log lines or panics. All
// errors are returned to the caller; no recovery is attempted
// (propagation policy, unchanged from section 7).
package diag

import (
	"fmt"

	"github.com/lindqvist/typstrealize/syntax"
)

// Error wraps an inner error with the source span it applies to.
// Equivalent to Rust's `.at(span)`.
type Error struct {
	Err  error
	Span syntax.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at %s)", e.Err.Error(), e.Span)
}

func (e *Error) Unwrap() error { return e.Err }

// At wraps err with span. Equivalent to Rust's `.at(span)`.
func At(err error, span syntax.Span) error {
	if err == nil {
		return nil
	}
	return &Error{Err: err, Span: span}
}

// Hinted wraps an error with one or more hints shown alongside the
// message, mirroring the `bail!` macro's trailing "hint: ..." lines.
type Hinted struct {
	Err   error
	Span  syntax.Span
	Hints []string
}

func (e *Hinted) Error() string {
	msg := fmt.Sprintf("%s (at %s)", e.Err.Error(), e.Span)
	for _, h := range e.Hints {
		msg += "\nhint: " + h
	}
	return msg
}

func (e *Hinted) Unwrap() error { return e.Err }

// WithHint attaches a hint to err at span, constructing a Hinted.
func WithHint(err error, span syntax.Span, hint string) error {
	if h, ok := err.(*Hinted); ok {
		h.Hints = append(h.Hints, hint)
		return h
	}
	return &Hinted{Err: err, Span: span, Hints: []string{hint}}
}

// Bail constructs a plain message error at span, mirroring `bail!(span,
// "message")` with no existing error to wrap.
func Bail(span syntax.Span, format string, args ...any) error {
	return &Error{Err: fmt.Errorf(format, args...), Span: span}
}

// BailHint is Bail plus an immediate hint, mirroring `bail!(span,
// "message"; hint: "text")`.
func BailHint(span syntax.Span, hint string, format string, args ...any) error {
	return WithHint(fmt.Errorf(format, args...), span, hint)
}
