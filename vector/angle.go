// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// AngleUnit selects the unit of an angle result.
//
//   - Radians — the default, in [0, π].
//   - Degrees — radians scaled by 180/π, in [0, 180].
type AngleUnit int

const (
	// Radians returns angles in radians.
	Radians AngleUnit = iota

	// Degrees returns angles in degrees.
	Degrees
)

// cosineDigits is the number of fractional digits the unit-vector cosine is
// rounded to before acos.
const cosineDigits = 3

// AngleWith returns the angle between v and w as acos(round(û·ŵ, 3)).
//
// The rounding keeps the acos argument inside [-1, 1] despite rounding in
// Magnitude and Normalized. Consequently angles are only as accurate as a
// cosine with 3 fractional digits; use Angle for the unrounded value.
//
// Errors:
//   - ErrDimensionMismatch if v and w differ in dimension.
//   - ErrZeroVectorAngle if either operand is the zero vector.
func (v Vector) AngleWith(w Vector, unit AngleUnit) (float64, error) {
	if err := validateSameDimension(v, w); err != nil {
		return 0, vectorErrorf("AngleWith", err)
	}
	u1, err := v.Normalized()
	if err != nil {
		return 0, vectorErrorf("AngleWith", translateZero(err, ErrZeroVectorAngle))
	}
	u2, err := w.Normalized()
	if err != nil {
		return 0, vectorErrorf("AngleWith", translateZero(err, ErrZeroVectorAngle))
	}
	cos := u1.dot(u2).RoundBank(cosineDigits)

	return toUnit(math.Acos(cos.InexactFloat64()), unit), nil
}

// Angle returns the unrounded angle acos(v·w / (|v||w|)). The cosine is
// clamped to [-1, 1] to absorb float64 drift.
//
// Errors:
//   - ErrDimensionMismatch if v and w differ in dimension.
//   - ErrZeroVectorAngle if either operand is the zero vector.
func (v Vector) Angle(w Vector, unit AngleUnit) (float64, error) {
	if err := validateSameDimension(v, w); err != nil {
		return 0, vectorErrorf("Angle", err)
	}
	mv, mw := v.Magnitude(), w.Magnitude()
	if mv.IsZero() || mw.IsZero() {
		return 0, vectorErrorf("Angle", ErrZeroVectorAngle)
	}
	cos := divSig(v.dot(w), mv.Mul(mw), v.opts.precision).InexactFloat64()
	cos = math.Max(-1, math.Min(1, cos))

	return toUnit(math.Acos(cos), unit), nil
}

// IsZero reports whether |v| is below the configured tolerance.
func (v Vector) IsZero() bool {
	return v.IsZeroWithin(v.opts.tolerance)
}

// IsZeroWithin reports whether |v| < tol.
func (v Vector) IsZeroWithin(tol float64) bool {
	return lessThanTol(v.Magnitude(), tol)
}

// IsParallel reports whether v and w point along the same line. The zero
// vector is parallel to every vector; otherwise the rounded angle of
// AngleWith must be exactly 0 or π.
//
// Errors:
//   - ErrDimensionMismatch if v and w differ in dimension.
func (v Vector) IsParallel(w Vector) (bool, error) {
	if err := validateSameDimension(v, w); err != nil {
		return false, vectorErrorf("IsParallel", err)
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	theta, err := v.AngleWith(w, Radians)
	if err != nil {
		return false, vectorErrorf("IsParallel", err)
	}

	return theta == 0 || theta == math.Pi, nil
}

// IsOrthogonal reports whether |v·w| is below the configured tolerance.
//
// Errors:
//   - ErrDimensionMismatch if v and w differ in dimension.
func (v Vector) IsOrthogonal(w Vector) (bool, error) {
	return v.IsOrthogonalWithin(w, v.opts.tolerance)
}

// IsOrthogonalWithin reports whether |v·w| < tol.
func (v Vector) IsOrthogonalWithin(w Vector, tol float64) (bool, error) {
	if err := validateSameDimension(v, w); err != nil {
		return false, vectorErrorf("IsOrthogonal", err)
	}

	return lessThanTol(v.dot(w).Abs(), tol), nil
}

// lessThanTol reports d < tol for any float64 tol, NaN included (never less).
func lessThanTol(d decimal.Decimal, tol float64) bool {
	switch {
	case math.IsNaN(tol), math.IsInf(tol, -1):
		return false
	case math.IsInf(tol, 1):
		return true
	}

	return d.LessThan(decimal.NewFromFloat(tol))
}

// translateZero maps ErrZeroVector to target and leaves other errors as is.
func translateZero(err, target error) error {
	if errors.Is(err, ErrZeroVector) {
		return target
	}

	return err
}

// toUnit converts radians to the requested unit.
func toUnit(rad float64, unit AngleUnit) float64 {
	if unit == Degrees {
		return rad * (180 / math.Pi)
	}

	return rad
}
