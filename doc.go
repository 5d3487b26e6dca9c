// Package vulkanplay synthesizes the procedural scalar fields a terrain
// renderer starts from: fractal heightmaps and island coastline masks.
//
// 🚀 What is in here?
//
//	Two pure, seedable generators plus the plumbing around them:
//		• heightmap: diamond-square midpoint displacement, normalised to [0, 255]
//		• island   : radial alpha mask bounded by two random Fourier envelopes
//		• rng      : explicit, reproducible random sources (PCG) and test doubles
//		• matrix   : dense row-major grid with normalise / clip / crop kernels
//		• gridgraph: landmass analysis (connected components, bridging cost)
//		• material : sand / grass / rock / snow classification and colours
//		• raster   : PNG and raw byte encoding, atomic file output
//
// ✨ Guarantees
//
//   - Same seed, same parameters → bit-identical grid.
//   - No global random state; every generator takes an rng.Source.
//   - Generated grids contain only finite values.
//
// Commands:
//
//	cmd/diamondsquare: write a heightmap (.png or .raw)
//	cmd/islandmask   : write an island mask (.png or .raw)
//
// Quick start:
//
//	grid, err := heightmap.Generate(256, rng.New(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mask, err := island.Generate(257, 257, rng.New(42))
//	...
package vulkanplay
