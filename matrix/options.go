// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and
// sparse construction. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Append.
	DefaultValidateNaNInf = true

	// DefaultDropTolerance is the magnitude at or below which a dense entry is
	// treated as structurally zero during dense→sparse conversion.
	// 0 keeps every non-zero entry (exact conversion).
	DefaultDropTolerance = 0.0
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicDropTolInvalid = "matrix: WithDropTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	dropTol        float64 // >= 0; DefaultDropTolerance
}

// WithEpsilon sets the numeric tolerance eps used by structural checks
// (e.g. ValidateSymmetric).
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation. Use only when
// non-finite values are expected to flow through (e.g. divergence studies).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDropTolerance sets the magnitude at or below which entries are dropped
// by CSRFromDense. Panics on NaN, ±Inf or negative tol.
//
// AI-Hints:
//   - Keep 0 for operators that must round-trip exactly (Laplacian stencils).
func WithDropTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicDropTolInvalid)
	}

	return func(o *Options) { o.dropTol = tol }
}

// NewMatrixOptions resolves a sequence of options into an Options snapshot.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the configured structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// DropTolerance returns the dense→sparse drop threshold.
func (o Options) DropTolerance() float64 { return o.dropTol }

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; Complexity O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		dropTol:        DefaultDropTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
