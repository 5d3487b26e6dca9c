// SPDX-License-Identifier: MIT

package rng

import (
	"math/rand/v2"
)

// Source yields uniformly distributed values in [0, 1).
// Implementations need not be safe for concurrent use.
type Source interface {
	Float64() float64
}

// PCG is a seedable Source backed by math/rand/v2's PCG-DXSM generator.
type PCG struct {
	r *rand.Rand
}

var _ Source = (*PCG)(nil)

// New returns a PCG seeded with seed on stream 0.
// Two PCGs created with the same seed produce identical draws.
func New(seed uint64) *PCG {
	return Derive(seed, 0)
}

// Derive returns a PCG seeded with seed on an explicit stream.
// Distinct streams of one seed are independent, so a parallel caller can hand
// stream i to worker i and still reproduce its output.
func Derive(seed, stream uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, stream))}
}

// NewEntropy returns a PCG seeded from the runtime's entropy-seeded generator.
// Use it when the caller supplied no seed.
func NewEntropy() *PCG {
	return Derive(rand.Uint64(), rand.Uint64())
}

// NewOptional returns New(uint64(*seed)) when seed is non-nil and NewEntropy
// otherwise. Negative seeds are reinterpreted bit-for-bit.
func NewOptional(seed *int64) *PCG {
	if seed == nil {
		return NewEntropy()
	}

	return New(uint64(*seed))
}

// Float64 returns a uniform draw in [0, 1).
func (p *PCG) Float64() float64 {
	return p.r.Float64()
}

// Uint64 exposes the raw generator output; used to derive child seeds.
func (p *PCG) Uint64() uint64 {
	return p.r.Uint64()
}

// Scaled draws one value from src and maps it to [-mag, +mag):
// (2u - 1) * mag.
func Scaled(src Source, mag float64) float64 {
	return (2*src.Float64() - 1.0) * mag
}
