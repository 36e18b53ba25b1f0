// SPDX-License-Identifier: MIT

package vector

import "errors"

// ComponentParallelTo returns the projection of v onto the direction of
// basis: (v·b̂)·b̂ where b̂ is basis normalized.
//
// Errors:
//   - ErrDimensionMismatch if v and basis differ in dimension.
//   - ErrNoUniqueParallelComponent if basis is the zero vector.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	if err := validateSameDimension(v, basis); err != nil {
		return Vector{}, vectorErrorf("ComponentParallelTo", err)
	}
	u, err := basis.Normalized()
	if err != nil {
		return Vector{}, vectorErrorf("ComponentParallelTo", translateZero(err, ErrNoUniqueParallelComponent))
	}
	weight := v.dot(u)

	// keep v's options on the result rather than basis's
	return v.derive(u.TimesScalar(weight).coords), nil
}

// ComponentOrthogonalTo returns v minus its component parallel to basis.
//
// Errors:
//   - ErrDimensionMismatch if v and basis differ in dimension.
//   - ErrNoUniqueOrthogonalComponent if basis is the zero vector.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	p, err := v.ComponentParallelTo(basis)
	if err != nil {
		if errors.Is(err, ErrNoUniqueParallelComponent) {
			err = ErrNoUniqueOrthogonalComponent
		}
		return Vector{}, vectorErrorf("ComponentOrthogonalTo", err)
	}

	return v.Minus(p)
}
