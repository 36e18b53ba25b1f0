// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Vector is an immutable ordered tuple of decimal coordinates.
//
// The zero value is not a valid Vector; build one with New, NewFromFloats,
// NewFromInts, NewFromStrings or From. Binary operations reject a zero-value
// operand with ErrEmptyCoordinates; unary operations on it return an empty
// result. Every operation returns a fresh Vector and never writes into its
// operands.
type Vector struct {
	coords []decimal.Decimal
	opts   Options
}

// New builds a Vector from decimal coordinates. The slice is copied, so later
// writes by the caller do not leak into the Vector.
//
// Errors:
//   - ErrEmptyCoordinates if coords is nil or empty.
func New(coords []decimal.Decimal, opts ...Option) (Vector, error) {
	if err := validateNonEmpty(len(coords)); err != nil {
		return Vector{}, vectorErrorf("New", err)
	}
	out := make([]decimal.Decimal, len(coords))
	copy(out, coords)

	return Vector{coords: out, opts: gatherOptions(opts...)}, nil
}

// NewFromFloats builds a Vector from float64 coordinates. Each value is
// converted through its shortest decimal representation, so 8.218 becomes
// exactly 8.218.
//
// Errors:
//   - ErrEmptyCoordinates if coords is empty.
//   - ErrNonFinite if any value is NaN or ±Inf.
func NewFromFloats(coords []float64, opts ...Option) (Vector, error) {
	if err := validateNonEmpty(len(coords)); err != nil {
		return Vector{}, vectorErrorf("NewFromFloats", err)
	}
	out := make([]decimal.Decimal, len(coords))
	for i, x := range coords {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Vector{}, vectorErrorf("NewFromFloats", ErrNonFinite)
		}
		out[i] = decimal.NewFromFloat(x)
	}

	return Vector{coords: out, opts: gatherOptions(opts...)}, nil
}

// NewFromInts builds a Vector from integer coordinates.
func NewFromInts(coords []int64, opts ...Option) (Vector, error) {
	if err := validateNonEmpty(len(coords)); err != nil {
		return Vector{}, vectorErrorf("NewFromInts", err)
	}
	out := make([]decimal.Decimal, len(coords))
	for i, x := range coords {
		out[i] = decimal.NewFromInt(x)
	}

	return Vector{coords: out, opts: gatherOptions(opts...)}, nil
}

// NewFromStrings parses decimal literals such as "1.671" or "-2e-3".
//
// Errors:
//   - ErrEmptyCoordinates if coords is empty.
//   - ErrBadCoordinate if a literal does not parse.
func NewFromStrings(coords []string, opts ...Option) (Vector, error) {
	if err := validateNonEmpty(len(coords)); err != nil {
		return Vector{}, vectorErrorf("NewFromStrings", err)
	}
	out := make([]decimal.Decimal, len(coords))
	for i, s := range coords {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return Vector{}, vectorErrorf("NewFromStrings", ErrBadCoordinate)
		}
		out[i] = d
	}

	return Vector{coords: out, opts: gatherOptions(opts...)}, nil
}

// From builds a Vector from any supported sequence of numbers:
// []decimal.Decimal, []float64, []float32, []int, []int64, []string.
//
// Errors:
//   - ErrEmptyCoordinates if values is nil or an empty sequence.
//   - ErrNotSequence for anything that is not one of the sequences above.
//   - the errors of the matching NewFromX constructor.
func From(values any, opts ...Option) (Vector, error) {
	switch xs := values.(type) {
	case nil:
		return Vector{}, vectorErrorf("From", ErrEmptyCoordinates)
	case Vector:
		return New(xs.coords, opts...)
	case []decimal.Decimal:
		return New(xs, opts...)
	case []float64:
		return NewFromFloats(xs, opts...)
	case []float32:
		return newFromFloat32s(xs, opts...)
	case []int:
		is := make([]int64, len(xs))
		for i, x := range xs {
			is[i] = int64(x)
		}
		return NewFromInts(is, opts...)
	case []int64:
		return NewFromInts(xs, opts...)
	case []string:
		return NewFromStrings(xs, opts...)
	default:
		return Vector{}, vectorErrorf("From", ErrNotSequence)
	}
}

// newFromFloat32s converts through each float32's shortest decimal
// representation, so float32(8.218) becomes exactly 8.218.
func newFromFloat32s(coords []float32, opts ...Option) (Vector, error) {
	if err := validateNonEmpty(len(coords)); err != nil {
		return Vector{}, vectorErrorf("From", err)
	}
	out := make([]decimal.Decimal, len(coords))
	for i, x := range coords {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return Vector{}, vectorErrorf("From", ErrNonFinite)
		}
		out[i] = decimal.NewFromFloat32(x)
	}

	return Vector{coords: out, opts: gatherOptions(opts...)}, nil
}

// derive wraps freshly computed coordinates, inheriting v's options.
// coords must be owned by the caller and non-empty.
func (v Vector) derive(coords []decimal.Decimal) Vector {
	return Vector{coords: coords, opts: v.opts}
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.coords))
	copy(out, v.coords)

	return out
}

// At returns the i-th coordinate, or false when i is out of range.
func (v Vector) At(i int) (decimal.Decimal, bool) {
	if i < 0 || i >= len(v.coords) {
		return decimal.Zero, false
	}

	return v.coords[i], true
}

// Floats returns the coordinates converted to float64.
func (v Vector) Floats() []float64 {
	out := make([]float64, len(v.coords))
	for i, c := range v.coords {
		out[i] = c.InexactFloat64()
	}

	return out
}

// Equal reports whether v and w have the same dimension and numerically equal
// coordinates. Options are not part of a Vector's identity, and 1.50 equals 1.5.
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}

	return true
}

// String renders the vector as "Vector: (x1, x2, ...)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, c := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
