// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestVecDense_RoundTrip verifies conversion to gonum and back.
func TestVecDense_RoundTrip(t *testing.T) {
	v := vec(t, 8.813, -1.331, -6.247)
	x := v.VecDense()
	require.Equal(t, 3, x.Len())
	assert.Equal(t, -1.331, x.AtVec(1))

	back, err := vector.FromVec(x)
	require.NoError(t, err)
	assert.True(t, back.Equal(v))

	// the gonum copy is independent of v
	x.SetVec(0, 100)
	assert.True(t, back.Equal(vec(t, 8.813, -1.331, -6.247)))
}

// TestFromVec_Errors covers nil and non-finite gonum input.
func TestFromVec_Errors(t *testing.T) {
	_, err := vector.FromVec(nil)
	assert.ErrorIs(t, err, vector.ErrEmptyCoordinates)

	_, err = vector.FromVec(mat.NewVecDense(2, []float64{1, nan()}))
	assert.ErrorIs(t, err, vector.ErrNonFinite)
}

// TestFloatOracle cross-checks decimal results against gonum's float64 kernels.
func TestFloatOracle(t *testing.T) {
	pairs := [][2][]float64{
		{{7.887, 4.138}, {-8.802, 6.776}},
		{{8.462, 7.893, -8.187}, {6.984, -5.975, 4.778}},
		{{-2.029, 9.97, 4.172, 0.5}, {-9.231, -6.639, -7.245, 1.25}},
	}
	for _, p := range pairs {
		v, w := vec(t, p[0]...), vec(t, p[1]...)

		d, err := v.InnerProduct(w)
		require.NoError(t, err)
		assert.InDelta(t, mat.Dot(v.VecDense(), w.VecDense()), d.InexactFloat64(), eps)
		assert.InDelta(t, floats.Dot(p[0], p[1]), d.InexactFloat64(), eps)
		assert.InDelta(t, floats.Norm(p[0], 2), v.Magnitude().InexactFloat64(), eps)

		if v.Dimension() == 3 {
			c, err := v.CrossProduct(w)
			require.NoError(t, err)
			// |v×w|² = |v|²|w|² − (v·w)²
			lhs := floats.Dot(c.Floats(), c.Floats())
			rhs := floats.Dot(p[0], p[0])*floats.Dot(p[1], p[1]) - floats.Dot(p[0], p[1])*floats.Dot(p[0], p[1])
			assert.InDelta(t, rhs, lhs, 1e-6)
		}
	}
}
