// SPDX-License-Identifier: MIT

// Package spinop: functional configuration for operator construction and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); data-dependent validation (spin value, site range) surfaces
//     as sentinel errors from New.
package spinop

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSpin is the spin quantum number applied when WithSpin is not
	// given: spin-1/2, the qubit case, with per-site dimension 2.
	DefaultSpin Spin = 0.5

	// DefaultTolerance is the near-zero cancellation threshold used by
	// Simplify and by canonical equality. Coefficients with magnitude at or
	// below this value are treated as zero.
	DefaultTolerance = 1e-12

	// InferNumSites is the sentinel "not set" value for the site count:
	// New infers the register as one more than the maximum site index seen.
	InferNumSites = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNumSitesInvalid  = "spinop: WithNumSites: n must be positive"
	panicToleranceInvalid = "spinop: WithTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	numSites int     // InferNumSites ⇒ infer from labels; otherwise > 0
	spin     Spin    // validated by New (data-dependent)
	tol      float64 // >= 0, finite; DefaultTolerance
}

// ---------- Constructors (WithX) ----------

// WithNumSites fixes the site-index register to exactly n sites.
// Every site index in every label must then satisfy 0 ≤ site < n.
//
// Panics with a stable message when n is not positive (programmer error);
// out-of-range labels surface as ErrMalformedLabel from New.
//
// Complexity: O(1).
func WithNumSites(n int) Option {
	if n <= 0 {
		panic(panicNumSitesInvalid)
	}

	return func(o *Options) { o.numSites = n }
}

// WithSpin sets the spin quantum number (per-site dimension 2s+1).
//
// The value is data-dependent, so it is validated by New (ErrInvalidSpin),
// not here: an invalid spin is an input error, not a programmer error.
//
// Complexity: O(1).
func WithSpin(s Spin) Option {
	return func(o *Options) { o.spin = s }
}

// WithTolerance sets the near-zero cancellation threshold used by Simplify
// and canonical equality. Larger values cancel more aggressively.
//
// Panics with a stable message when tol is negative or non-finite.
//
// Complexity: O(1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// ---------- Option Resolution ----------

// gatherOptions applies user-provided Option setters on top of the
// documented defaults (last-writer-wins) and returns the resolved state.
// This is the canonical internal entry for every construction path.
//
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		numSites: InferNumSites,
		spin:     DefaultSpin,
		tol:      DefaultTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
