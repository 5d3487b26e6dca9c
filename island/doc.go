// SPDX-License-Identifier: MIT

// Package island generates radial coastline alpha masks.
//
// What:
//
//   - Two random Fourier envelopes (inner and outer) perturb two base radii
//     around the image centre.
//   - Inside the inner boundary the mask is fully opaque (255), outside the
//     outer boundary fully transparent (0), with a linear falloff between.
//   - Higher harmonics are damped geometrically, so the coastline wobbles
//     without fraying.
//
// Why:
//
//   - Multiplying a heightmap by the mask sinks its borders into the sea and
//     yields an island with an irregular, non-symmetric shore.
//
// Complexity:
//
//   - Envelope construction: O(1) (five harmonics each).
//   - Generate: O(W×H) pixel evaluations, optionally split across workers.
//
// Options:
//
//   - WithDecay: amplitude decay between successive harmonics (default 0.9).
//   - WithWorkers: number of goroutines evaluating row bands (default 1).
//
// Errors:
//
//   - ErrInvalidDimension: width or height is not positive.
//   - ErrNilSource: nil random source.
//   - ErrInvalidDecay, ErrInvalidWorkers: bad options.
package island
