package heightmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jajcus/vulkanplay/heightmap"
	"github.com/Jajcus/vulkanplay/matrix"
)

// sampleGrid is a 4×4 grid whose value encodes its cell: 10*row + col.
func sampleGrid(t *testing.T) *matrix.Dense {
	t.Helper()
	g, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	require.NoError(t, g.Apply(func(i, j int, _ float64) float64 { return float64(10*i + j) }))

	return g
}

func TestSample(t *testing.T) {
	g := sampleGrid(t)
	cases := []struct {
		name string
		x, z float64
		want float64
	}{
		// x=0 → col 2, z=0 → nz 2 → row 1
		{"Origin", 0, 0, 12},
		{"NearFarCorner", -4, 2.9, 0},
		{"NearCorner", -4, -4, 30},
		{"ClampHigh", 100, 100, 3},
		{"ClampLow", -100, -100, 30},
		{"StepRounding", 0.9, -1.1, 22},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := heightmap.Sample(g, tc.x, tc.z, 2, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSample_Errors(t *testing.T) {
	g := sampleGrid(t)
	_, err := heightmap.Sample(g, 0, 0, 0, 1)
	assert.ErrorIs(t, err, heightmap.ErrInvalidStep)
	_, err = heightmap.Sample(nil, 0, 0, 1, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
