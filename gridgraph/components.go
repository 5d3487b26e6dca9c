package gridgraph

import "sort"

// ConnectedComponents finds all contiguous regions ("landmasses") of land
// cells according to gg.Conn connectivity.
// Components are returned in row-major order of their first cell; each is a
// slice of row-major cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if seen[i0] || !gg.IsLand(x, y) {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					if vi := gg.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// LandCount returns the number of land cells.
func (gg *GridGraph) LandCount() int {
	n := 0
	for _, v := range gg.cells {
		if v >= gg.LandThreshold {
			n++
		}
	}

	return n
}

// LargestComponent returns the index (into ConnectedComponents) of the
// largest landmass, the earliest one on ties, or -1 if there is no land.
func (gg *GridGraph) LargestComponent() int {
	best, size := -1, 0
	for i, c := range gg.ConnectedComponents() {
		if len(c) > size {
			best, size = i, len(c)
		}
	}

	return best
}

// Summarize counts landmasses and land cells.
func (gg *GridGraph) Summarize() Summary {
	comps := gg.ConnectedComponents()
	s := Summary{Landmasses: len(comps), Sizes: make([]int, len(comps))}
	for i, c := range comps {
		s.Sizes[i] = len(c)
		s.LandCells += len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.Sizes)))
	if len(s.Sizes) > 0 {
		s.Largest = s.Sizes[0]
	}

	return s
}
