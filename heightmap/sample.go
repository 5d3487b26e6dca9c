// SPDX-License-Identifier: MIT

package heightmap

import (
	"math"

	"github.com/Jajcus/vulkanplay/matrix"
)

// Sample returns the height of the grid cell nearest to world position (x, z)
// for a terrain mesh centred on the origin with xStep/zStep world units per
// cell. Columns run along +x; rows run along -z, so row 0 is the far edge.
// Positions outside the mesh clamp to the border cells.
//
// Errors: matrix.ErrNilMatrix, ErrInvalidStep.
// Complexity: O(1).
func Sample(grid matrix.Matrix, x, z, xStep, zStep float64) (float64, error) {
	if err := matrix.ValidateNotNil(grid); err != nil {
		return 0, err
	}
	if !isFinite(xStep) || !isFinite(zStep) || xStep <= 0 || zStep <= 0 {
		return 0, ErrInvalidStep
	}
	width, depth := grid.Cols(), grid.Rows()

	col := cellIndex(x/xStep+float64(width/2)+0.5, width)
	nz := cellIndex(z/zStep+float64(depth/2)+0.5, depth)

	return grid.At(depth-1-nz, col)
}

// cellIndex floors s and clamps it into [0, n).
func cellIndex(s float64, n int) int {
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	if s >= float64(n) {
		return n - 1
	}

	return int(s)
}
