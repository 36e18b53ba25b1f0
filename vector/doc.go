// SPDX-License-Identifier: MIT

// Package vector provides an immutable, fixed-dimension Vector of exact
// decimal coordinates with arithmetic and geometry operations.
//
// 🚀 What is a Vector here?
//
//	An ordered tuple (x1, x2, …, xn), n ≥ 1, whose coordinates are stored as
//	github.com/shopspring/decimal values instead of float64. Chained
//	additions, subtractions and scalings are therefore exact; only division
//	and square root are rounded, to a configurable number of significant
//	digits.
//
// ✨ Operations:
//   - arithmetic: Plus, Minus, TimesScalar, InnerProduct
//   - measurement: Magnitude, Normalized, AngleWith, Angle
//   - classification: IsZero, IsParallel, IsOrthogonal
//   - projection: ComponentParallelTo, ComponentOrthogonalTo
//   - 3-D (with 2-D embedding): CrossProduct, AreaOfParallelogram, AreaOfTriangle
//   - gonum interop: VecDense, FromVec
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/vector"
//
//	v, err := vector.NewFromFloats([]float64{8.218, -9.341})
//	w, err := vector.NewFromFloats([]float64{-1.129, 2.111})
//	sum, err := v.Plus(w) // Vector: (7.089, -7.230)
//
// Numeric policy:
//   - Magnitude sums the squares exactly and takes a decimal Newton square
//     root seeded from float64 on the mantissa alone, so 1e200 and 1e-200
//     coordinates neither overflow nor underflow.
//   - Precision counts significant digits, not fractional ones: the unit
//     vector of (1e31, 0) is (1, 0), not (0, 0).
//   - AngleWith rounds the cosine of the two unit vectors to 3 digits
//     (half-even) before acos, which keeps the argument inside [-1, 1]
//     but limits angle accuracy to roughly 3 significant digits of the
//     cosine. Angle skips the rounding and clamps instead.
//
// Errors:
//
//	All failures are sentinel errors from errors.go, matched with errors.Is.
//	No exported function panics on user input; Option constructors panic
//	on nonsensical configuration values.
//
// Concurrency:
//
//	A Vector never changes after construction, so it may be shared between
//	goroutines without synchronization.
package vector
