package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jajcus/vulkanplay/matrix"
)

// TestMinMax covers the normal case and the NaN guard.
func TestMinMax(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{3, -2}, {7, 0}})
	require.NoError(t, err)
	lo, hi, err := matrix.MinMax(m)
	require.NoError(t, err)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 7.0, hi)

	dirty, err := matrix.FromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, _, err = matrix.MinMax(dirty)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, _, err = matrix.MinMax(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRescaleInPlace_Extremes maps min to exactly 0 and max to exactly 255.
func TestRescaleInPlace_Extremes(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{-3.7, 1.1}, {12.9, 0.3}})
	require.NoError(t, err)
	require.NoError(t, matrix.RescaleInPlace(m, 0, 255))

	lo, hi, err := matrix.MinMax(m)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 255.0, hi)

	v, _ := m.At(0, 1)
	assert.InDelta(t, (1.1+3.7)*255/(12.9+3.7), v, 1e-9)
}

// TestRescaleInPlace_Flat turns a degenerate range into all-lo output.
func TestRescaleInPlace_Flat(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{4, 4}, {4, 4}})
	require.NoError(t, err)
	require.NoError(t, matrix.RescaleInPlace(m, 0, 255))
	assert.Equal(t, []float64{0, 0, 0, 0}, m.Data())
}

// TestRescaleInPlace_Idempotent re-normalises an already normalised grid.
func TestRescaleInPlace_Idempotent(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 17.123456789}, {254.9999999, 255}})
	require.NoError(t, err)
	before := m.Data()
	require.NoError(t, matrix.RescaleInPlace(m, 0, 255))
	assert.Equal(t, before, m.Data(), "re-normalising must be a bit-exact no-op")
}

// TestRescaleInPlace_Errors covers nil receivers and non-finite bounds.
func TestRescaleInPlace_Errors(t *testing.T) {
	assert.ErrorIs(t, matrix.RescaleInPlace(nil, 0, 1), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.RescaleInPlace(m, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestNormalize_Copy leaves the input untouched.
func TestNormalize_Copy(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 3}})
	require.NoError(t, err)
	out, err := matrix.Normalize(m, -1, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, 1}, out.Data())
	assert.Equal(t, []float64{1, 3}, m.Data())
}

// TestRescaleInPlace_BoundsSweep rescales many random ranges and expects the
// extremes to land exactly on the bounds with nothing outside them.
func TestRescaleInPlace_BoundsSweep(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1<<40))
	for n := 0; n < 500; n++ {
		data := make([]float64, 25)
		scale := math.Ldexp(1, r.IntN(40)-20)
		for i := range data {
			data[i] = (r.Float64()*2 - 1) * scale
		}
		m, err := matrix.NewDenseFrom(5, 5, data)
		require.NoError(t, err)
		require.NoError(t, matrix.RescaleInPlace(m, 0, 255))

		lo, hi, err := matrix.MinMax(m)
		require.NoError(t, err)
		require.Equal(t, 0.0, lo, "iteration %d", n)
		require.Equal(t, 255.0, hi, "iteration %d", n)

		before := m.Data()
		require.NoError(t, matrix.RescaleInPlace(m, 0, 255))
		require.Equal(t, before, m.Data(), "iteration %d", n)
	}
}
