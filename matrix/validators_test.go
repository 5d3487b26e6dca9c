package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jajcus/vulkanplay/matrix"
)

func TestValidateNotNil(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateShapes(t *testing.T) {
	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	wide, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateSquare(sq))
	assert.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSameShape(sq, sq))
	assert.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)

	ok, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateFinite(ok))
}
