// Package matrix provides the dense float64 grid that every generator writes
// into, plus the numeric kernels used to turn raw fields into displayable ones.
//
// The matrix package provides:
//
//   - Dense, a row-major grid with bounds-checked At/Set and a NaN/Inf guard.
//   - Min-max normalisation (Normalize, RescaleInPlace) with a documented
//     fallback for flat fields.
//   - Element-wise helpers: Clip, Round, ReplaceInfNaN, Crop, AllClose.
//   - Central validators shared by the generator packages.
//
// Heightmaps and island masks are small enough that O(r*c) memory is always
// acceptable; every kernel here is a single deterministic pass.
package matrix
