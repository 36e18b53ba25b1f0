// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every exported operation returns one of these sentinels, possibly wrapped
// with the operation tag (e.g. "Plus: vector: dimension mismatch"). Callers
// and tests MUST match them with errors.Is, never by message text.

package vector

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// invalid argument -> undefined dimension (cross product) -> dimension
// mismatch -> zero-vector conditions.

var (
	// ErrInvalidArgument is the kind shared by every construction failure.
	// The refinements below wrap it, so errors.Is(err, ErrInvalidArgument)
	// holds for all of them.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrEmptyCoordinates is returned when a Vector is built from an empty
	// or nil sequence.
	ErrEmptyCoordinates = fmt.Errorf("%w: coordinates must be nonempty", ErrInvalidArgument)

	// ErrNotSequence is returned by From when the input is not an ordered
	// sequence of numbers (e.g. a bare scalar or a map).
	ErrNotSequence = fmt.Errorf("%w: coordinates must be an ordered sequence", ErrInvalidArgument)

	// ErrNonFinite is returned when a float coordinate is NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("%w: coordinate is NaN or Inf", ErrInvalidArgument)

	// ErrBadCoordinate is returned when a string coordinate is not a decimal number.
	ErrBadCoordinate = fmt.Errorf("%w: coordinate is not a decimal number", ErrInvalidArgument)

	// ErrDimensionMismatch indicates operands of different dimension were
	// combined element-wise.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector is returned by Normalized for a vector of magnitude 0.
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrZeroVectorAngle is returned when an angle involves the zero vector.
	ErrZeroVectorAngle = errors.New("vector: cannot compute an angle with the zero vector")

	// ErrNoUniqueParallelComponent is returned when projecting onto the zero vector.
	ErrNoUniqueParallelComponent = errors.New("vector: no unique parallel component")

	// ErrNoUniqueOrthogonalComponent is the orthogonal counterpart of
	// ErrNoUniqueParallelComponent.
	ErrNoUniqueOrthogonalComponent = errors.New("vector: no unique orthogonal component")

	// ErrUndefinedDimension is returned by the cross product family outside
	// two or three dimensions.
	ErrUndefinedDimension = errors.New("vector: cross product is only defined in two or three dimensions")
)

// vectorErrorf tags err with the operation name, keeping errors.Is intact.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
