// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Build fixtures from float literals without error plumbing.
//   • Compare decimals the way the numeric scenarios are written: 3 digits.

package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// eps is the float tolerance for round-trips through float64 (sqrt, acos).
const eps = 1e-8

// vec builds a Vector from float literals or fails the test.
func vec(t testing.TB, xs ...float64) vector.Vector {
	t.Helper()
	v, err := vector.NewFromFloats(xs)
	require.NoError(t, err, "NewFromFloats(%v)", xs)

	return v
}

// fixed3 renders every coordinate with exactly 3 fractional digits.
func fixed3(v vector.Vector) []string {
	cs := v.Coordinates()
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.StringFixed(3)
	}

	return out
}

// dec parses a decimal literal or panics (fixtures only).
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nan() float64 { return math.NaN() }

func inf() float64 { return math.Inf(1) }
