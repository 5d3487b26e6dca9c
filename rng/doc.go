// SPDX-License-Identifier: MIT

// Package rng supplies the uniform random sources consumed by the generators.
//
// What:
//
//   - Source is the only thing a generator needs: single uniform draws in [0,1).
//   - PCG is the reference Source: PCG-DXSM from math/rand/v2, seeded with
//     rand.NewPCG(seed, stream). Float64 keeps the low 53 bits of one Uint64
//     (u<<11>>11) and divides by 2^53, so a seed yields the same stream on
//     every platform.
//   - Sequence and Counter are deterministic doubles for tests.
//
// Why:
//
//   - Generators never touch global random state; a seeded PCG handed in by the
//     caller makes "same seed, same grid" explicit and testable.
//   - Derive gives seed-derived sub-streams for callers that generate many
//     tiles in parallel.
//
// Complexity:
//
//   - Every draw is O(1) with no allocation.
package rng
