// Package gridgraph defines core types and options.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (any non-zero mask or height byte is land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D scalar grid as a graph. It is immutable once built.
// Width and Height define dimensions; cells holds a row-major copy of the
// input (cell (x, y) at y*Width + x, i.e. matrix row y, column x).
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	LandThreshold   float64
	cells           []float64
	neighborOffsets [][2]int
}

// Summary describes the landmasses of a grid.
type Summary struct {
	Landmasses int   // number of connected land components
	LandCells  int   // total land cells
	Largest    int   // size of the largest landmass (0 if none)
	Sizes      []int // landmass sizes, largest first
}
