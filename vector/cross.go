// SPDX-License-Identifier: MIT

package vector

import "github.com/shopspring/decimal"

// CrossProduct returns v × w by determinant expansion:
//
//	r0 =   v1·w2 − w1·v2
//	r1 = −(v0·w2 − w0·v2)
//	r2 =   v0·w1 − w0·v1
//
// Two-dimensional operands are embedded into three dimensions with a zero
// z-coordinate first, so the result is always three-dimensional.
//
// Errors:
//   - ErrUndefinedDimension if either operand is not 2- or 3-dimensional.
//   - ErrDimensionMismatch if v and w differ in dimension.
func (v Vector) CrossProduct(w Vector) (Vector, error) {
	if err := validateCrossDimension(v, w); err != nil {
		return Vector{}, vectorErrorf("CrossProduct", err)
	}
	a, b := embed3(v.coords), embed3(w.coords)
	out := []decimal.Decimal{
		a[1].Mul(b[2]).Sub(b[1].Mul(a[2])),
		a[0].Mul(b[2]).Sub(b[0].Mul(a[2])).Neg(),
		a[0].Mul(b[1]).Sub(b[0].Mul(a[1])),
	}

	return v.derive(out), nil
}

// AreaOfParallelogram returns |v × w|.
func (v Vector) AreaOfParallelogram(w Vector) (decimal.Decimal, error) {
	c, err := v.CrossProduct(w)
	if err != nil {
		return decimal.Zero, vectorErrorf("AreaOfParallelogram", err)
	}

	return c.Magnitude(), nil
}

// AreaOfTriangle returns |v × w| / 2.
func (v Vector) AreaOfTriangle(w Vector) (decimal.Decimal, error) {
	area, err := v.AreaOfParallelogram(w)
	if err != nil {
		return decimal.Zero, vectorErrorf("AreaOfTriangle", err)
	}

	return area.Mul(half), nil
}

// embed3 returns xs padded with a zero third coordinate when xs is 2-D.
func embed3(xs []decimal.Decimal) [3]decimal.Decimal {
	out := [3]decimal.Decimal{decimal.Zero, decimal.Zero, decimal.Zero}
	copy(out[:], xs)

	return out
}
