// Package heightmap synthesizes fractal terrain with the diamond-square
// (midpoint displacement) algorithm.
//
// 🚀 What is diamond-square?
//
//	Starting from four seeded corners of a (2^k+1)×(2^k+1) grid, each level
//	sets the centre of every square to the mean of its corners plus noise
//	("diamond"), then the centre of every diamond to the mean of its axis
//	neighbours plus noise ("square"). The noise half-width shrinks by a
//	constant reduction factor per level, giving self-similar relief.
//
// ✨ Key features:
//   - explicit rng.Source: the same seed gives the same grid everywhere
//   - tunable magnitude, reduction and corner scales (WithX options)
//   - min-max normalisation to [0,255] with an all-zero flat-field fallback
//   - RoundUpSize and Sample helpers for callers and terrain loaders
//
// ⚙️ Usage:
//
//	src := rng.New(42)
//	grid, err := heightmap.Generate(heightmap.RoundUpSize(200), src,
//	  heightmap.WithMagnitude(10), heightmap.WithReduction(0.5))
//
// Performance:
//
//   - Time:   O(N²) for an N×N grid (each cell is written once)
//   - Memory: O(N²), one owned buffer mutated in place
//
// The generator is sequential on purpose: the draw order is part of its
// reproducibility contract.
package heightmap
