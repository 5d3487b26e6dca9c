// Package gridgraph treats a generated scalar grid as a graph of land and
// water cells, enabling landmass analysis of heightmaps and island masks.
//
// What:
//
//   - GridGraph wraps a rectangular matrix.Matrix with a tunable LandThreshold.
//   - Identifies connected components ("landmasses") of cells with value ≥ LandThreshold.
//   - Summarize reports the landmass count, land cell count and largest landmass.
//   - Bridge computes the fewest water cells to fill (0-1 BFS) to join two landmasses.
//
// Why:
//
//   - A masked heightmap should read as one island; Summarize shows at a
//     glance whether the coastline broke it into an archipelago.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Bridge:              O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
