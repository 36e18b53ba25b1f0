// SPDX-License-Identifier: MIT

// Package vector: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that applies options in order.
//
// Design goals:
//   - No global state: the decimal precision travels with each Vector
//     instead of living in a process-wide context.
//   - Derived vectors inherit the options of the receiver.
package vector

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits kept by decimal
	// division and square root (magnitude, normalization, angles).
	DefaultPrecision int32 = 30

	// MinPrecision is the smallest precision accepted by WithPrecision.
	MinPrecision int32 = 28

	// DefaultTolerance is the threshold below which a magnitude or an inner
	// product counts as zero.
	DefaultTolerance = 1e-10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "vector: WithPrecision: precision must be >= 28"
	panicToleranceInvalid = "vector: WithTolerance: tolerance must be finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	precision int32   // DefaultPrecision
	tolerance float64 // DefaultTolerance
}

// WithPrecision sets the significant digits kept by decimal division and
// square root.
// Panics when places < MinPrecision.
func WithPrecision(places int32) Option {
	if places < MinPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = places }
}

// WithTolerance sets the zero threshold used by IsZero and IsOrthogonal.
// Panics when eps is NaN, ±Inf or not strictly positive.
//
// Notes:
//   - Prefer a small positive eps (e.g. 1e-10); a large tolerance makes
//     short vectors look like the zero vector.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		precision: DefaultPrecision,
		tolerance: DefaultTolerance,
	}
}

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}
