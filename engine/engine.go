// Package engine holds per-call compilation state consumed by the
// realization core: the show-rule depth counter (Route), a diagnostics
// sink, and the Locator. Grounded on typst-library's engine.rs
// Engine/Route/Sink types, stripped of the Routines vtable and World
// interface that existed to avoid import cycles with the now-deleted
// scripting front end.
package engine

import (
	"github.com/lindqvist/typstrealize/diag"
	"github.com/lindqvist/typstrealize/library/introspection"
	"github.com/lindqvist/typstrealize/syntax"
)

// Engine bundles the state exclusively owned by one realization call.
// Not shared across calls (section 5).
type Engine struct {
	Route   *Route
	Sink    *Sink
	Locator *introspection.Locator
}

// New creates an Engine with a fresh Route, Sink, and Locator.
func New(cfg *Config) *Engine {
	return &Engine{
		Route:   NewRoute(cfg),
		Sink:    NewSink(),
		Locator: introspection.NewLocator(),
	}
}

// ----------------------------------------------------------------------------
// Route
// ----------------------------------------------------------------------------

// DefaultMaxShowRuleDepth is the fallback show-rule nesting limit
// (section 4.2, "a fixed limit such as 64").
const DefaultMaxShowRuleDepth = 64

// Route tracks the show-rule recursion depth for one realization call.
// Matches Rust's Route struct narrowed to the one counter this core
// needs; cycle detection over source files belonged to the deleted
// front end.
type Route struct {
	depth int
	max   int
}

// NewRoute creates a Route respecting cfg's MaxShowRuleDepth (falling
// back to DefaultMaxShowRuleDepth when cfg is nil or zero).
func NewRoute(cfg *Config) *Route {
	max := DefaultMaxShowRuleDepth
	if cfg != nil && cfg.MaxShowRuleDepth > 0 {
		max = cfg.MaxShowRuleDepth
	}
	return &Route{max: max}
}

// Increase increments the depth counter before recursing on realized
// content.
func (r *Route) Increase() { r.depth++ }

// Decrease decrements the depth counter after returning from
// recursion.
func (r *Route) Decrease() { r.depth-- }

// Depth returns the current nesting depth.
func (r *Route) Depth() int { return r.depth }

// Within reports whether the current depth is still within limit.
func (r *Route) Within(limit int) bool { return r.depth <= limit }

// CheckShowDepth returns a hinted error if the show-rule depth exceeds
// the route's configured maximum (section 4.2's "show-rule depth
// counter"; error kind 1 in section 7).
func (r *Route) CheckShowDepth(span syntax.Span) error {
	if r.depth > r.max {
		return diag.BailHint(span,
			"check whether the show rule matches its own output",
			"maximum show rule depth exceeded (%d)", r.max)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Sink
// ----------------------------------------------------------------------------

// Sink is a push-only collector for warnings raised during
// realization (e.g. from a Synthesize step); errors are returned
// directly and never routed through the Sink (propagation policy,
// section 7).
type Sink struct {
	Warnings []string
}

// NewSink creates an empty Sink.
func NewSink() *Sink { return &Sink{} }

// Warn records a warning message.
func (s *Sink) Warn(message string) {
	s.Warnings = append(s.Warnings, message)
}
