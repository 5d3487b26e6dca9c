package gridgraph_test

import (
	"testing"

	"github.com/Jajcus/vulkanplay/gridgraph"
	"github.com/Jajcus/vulkanplay/heightmap"
	"github.com/Jajcus/vulkanplay/rng"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a 513×513
// heightmap with the water level at 41.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	grid, err := heightmap.Generate(512, rng.New(42))
	if err != nil {
		b.Fatalf("setup heightmap.Generate failed: %v", err)
	}
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 41
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkBridge joins two single-cell landmasses at opposite corners of a
// 500×500 sea.
func BenchmarkBridge(b *testing.B) {
	const n = 500
	grid := make([][]float64, n)
	for y := range grid {
		grid[y] = make([]float64, n)
	}
	grid[0][0] = 1
	grid[n-1][n-1] = 1
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gg.Bridge(0, 1); err != nil {
			b.Fatal(err)
		}
	}
}
