// Package gridgraph provides utilities to treat a 2D grid of scalar cell
// values as a graph. Cells with value < LandThreshold are "water"; cells with
// value ≥ LandThreshold are "land".
package gridgraph

import (
	"fmt"

	"github.com/Jajcus/vulkanplay/matrix"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph over m (row y = grid y, column x = grid x).
// It copies the values to ensure immutability.
// Returns ErrEmptyGrid for a nil matrix.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(m matrix.Matrix, opts GridOptions) (*GridGraph, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewGridGraph: %w", ErrEmptyGrid)
	}
	h, w := m.Rows(), m.Cols()
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	var cells []float64
	if d, ok := m.(*matrix.Dense); ok {
		cells = d.Data()
	} else {
		cells = make([]float64, 0, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v, err := m.At(y, x)
				if err != nil {
					return nil, fmt.Errorf("NewGridGraph: %w", err)
				}
				cells = append(cells, v)
			}
		}
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph from a rectangular [][]float64 with the default
// LandThreshold and the given connectivity.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func From2D(values [][]float64, conn Connectivity) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range values {
		if len(row) != len(values[0]) {
			return nil, ErrNonRectangular
		}
	}
	m, err := matrix.FromRows(values)
	if err != nil {
		return nil, fmt.Errorf("From2D: %w", err)
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(m, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx, dy) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the stored value of cell (x,y). The caller must check InBounds.
func (gg *GridGraph) Value(x, y int) float64 {
	return gg.cells[gg.index(x, y)]
}

// IsLand reports whether cell (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.cells[gg.index(x, y)] >= gg.LandThreshold
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
