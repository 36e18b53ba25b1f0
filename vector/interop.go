// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Bridge Vector to gonum's float64 linear algebra (gonum.org/v1/gonum/mat).
//   - Conversion to gonum is lossy (decimal -> float64); conversion back goes
//     through the shortest decimal representation of each float64.

package vector

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// VecDense returns v as a freshly allocated gonum column vector.
func (v Vector) VecDense() *mat.VecDense {
	return mat.NewVecDense(len(v.coords), v.Floats())
}

// FromVec builds a Vector from any gonum vector.
//
// Errors:
//   - ErrEmptyCoordinates if x is nil or has length 0.
//   - ErrNonFinite if an element is NaN or ±Inf.
func FromVec(x mat.Vector, opts ...Option) (Vector, error) {
	if x == nil {
		return Vector{}, vectorErrorf("FromVec", ErrEmptyCoordinates)
	}
	n := x.Len()
	if err := validateNonEmpty(n); err != nil {
		return Vector{}, vectorErrorf("FromVec", err)
	}
	fs := make([]float64, n)
	for i := range fs {
		fs[i] = x.AtVec(i)
		if math.IsNaN(fs[i]) || math.IsInf(fs[i], 0) {
			return Vector{}, vectorErrorf("FromVec", ErrNonFinite)
		}
	}

	return NewFromFloats(fs, opts...)
}
