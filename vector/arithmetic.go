// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/shopspring/decimal"
)

// Plus returns v + w, coordinate by coordinate.
//
// Errors:
//   - ErrDimensionMismatch if v and w differ in dimension.
//   - ErrEmptyCoordinates if either operand is the zero-value Vector.
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := validateSameDimension(v, w); err != nil {
		return Vector{}, vectorErrorf("Plus", err)
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Add(w.coords[i])
	}

	return v.derive(out), nil
}

// Minus returns v - w, coordinate by coordinate.
//
// Errors:
//   - ErrDimensionMismatch if v and w differ in dimension.
//   - ErrEmptyCoordinates if either operand is the zero-value Vector.
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := validateSameDimension(v, w); err != nil {
		return Vector{}, vectorErrorf("Minus", err)
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i].Sub(w.coords[i])
	}

	return v.derive(out), nil
}

// TimesScalar returns c·v. Exact: no rounding takes place.
func (v Vector) TimesScalar(c decimal.Decimal) Vector {
	out := make([]decimal.Decimal, len(v.coords))
	for i, x := range v.coords {
		out[i] = c.Mul(x)
	}

	return v.derive(out)
}

// TimesFloat is TimesScalar for a float64 factor, converted through its
// shortest decimal representation. Non-finite factors are rejected.
func (v Vector) TimesFloat(c float64) (Vector, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Vector{}, vectorErrorf("TimesFloat", ErrNonFinite)
	}

	return v.TimesScalar(decimal.NewFromFloat(c)), nil
}

// InnerProduct returns Σ v[i]·w[i] computed exactly.
//
// Errors:
//   - ErrDimensionMismatch if v and w differ in dimension.
//   - ErrEmptyCoordinates if either operand is the zero-value Vector.
func (v Vector) InnerProduct(w Vector) (decimal.Decimal, error) {
	if err := validateSameDimension(v, w); err != nil {
		return decimal.Zero, vectorErrorf("InnerProduct", err)
	}

	return v.dot(w), nil
}

// dot assumes equal dimension.
func (v Vector) dot(w Vector) decimal.Decimal {
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(w.coords[i]))
	}

	return sum
}

// Magnitude returns the Euclidean length sqrt(Σ x²).
// The sum of squares is exact; the square root is seeded in float64 on the
// mantissa only and refined in decimal to the configured significant digits,
// so huge and tiny vectors are handled alike.
func (v Vector) Magnitude() decimal.Decimal {
	return sqrtSig(v.dot(v), v.opts.precision)
}

// Normalized returns the unit vector v/|v|. The reciprocal of the magnitude
// is rounded to the configured number of significant digits.
//
// Errors:
//   - ErrZeroVector if the magnitude is exactly zero.
func (v Vector) Normalized() (Vector, error) {
	mag := v.Magnitude()
	if mag.IsZero() {
		return Vector{}, vectorErrorf("Normalized", ErrZeroVector)
	}
	inv := divSig(decimal.NewFromInt(1), mag, v.opts.precision)

	return v.TimesScalar(inv), nil
}
