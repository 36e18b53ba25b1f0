// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for the guard checks shared by operations.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.

package vector

// validateNonEmpty rejects a coordinate count of zero.
func validateNonEmpty(n int) error {
	if n == 0 {
		return ErrEmptyCoordinates
	}

	return nil
}

// validateSameDimension rejects zero-value operands and operands of
// different dimension.
func validateSameDimension(a, b Vector) error {
	if len(a.coords) == 0 || len(b.coords) == 0 {
		return ErrEmptyCoordinates
	}
	if len(a.coords) != len(b.coords) {
		return ErrDimensionMismatch
	}

	return nil
}

// validateCrossDimension accepts two operands of equal dimension 2 or 3.
// Undefined dimension is reported before a mismatch.
func validateCrossDimension(a, b Vector) error {
	if d := len(a.coords); d != 2 && d != 3 {
		return ErrUndefinedDimension
	}
	if d := len(b.coords); d != 2 && d != 3 {
		return ErrUndefinedDimension
	}

	return validateSameDimension(a, b)
}
