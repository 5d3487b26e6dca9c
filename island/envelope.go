// SPDX-License-Identifier: MIT

package island

import (
	"math"

	"github.com/Jajcus/vulkanplay/rng"
)

// Envelope is a truncated random sine series over the angle φ:
//
//	k(φ) = Σ_{j=0..5} a_j·sin(j·φ + p_j)
//
// Term 0 is always zero, so k has no constant offset. norm = Σ|a_j| bounds
// |k(φ)| and turns k into a perturbation in [-1, 1].
type Envelope struct {
	terms [Harmonics + 1]Harmonic
	norm  float64
}

// NewEnvelope draws an envelope from src. For j = 1..5 it draws the amplitude
// k·(2u-1) and then the phase π·(2u-1); k starts at 1 and is multiplied by the
// decay after each harmonic. Exactly ten values are drawn.
func NewEnvelope(src rng.Source, opts ...Option) (Envelope, error) {
	if src == nil {
		return Envelope{}, ErrNilSource
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return Envelope{}, err
	}

	return newEnvelope(src, o.decay), nil
}

func newEnvelope(src rng.Source, decay float64) Envelope {
	var e Envelope
	k := 1.0
	for j := 1; j <= Harmonics; j++ {
		a := rng.Scaled(src, k)
		p := rng.Scaled(src, math.Pi)
		e.terms[j] = Harmonic{Amplitude: a, Phase: p}
		e.norm += math.Abs(a)
		k *= decay
	}

	return e
}

// EnvelopeOf builds an envelope from explicit harmonics 1..len(h) (at most
// five; extras are ignored). Useful for reproducing a logged coastline.
func EnvelopeOf(h ...Harmonic) Envelope {
	var e Envelope
	for j := 1; j <= Harmonics && j <= len(h); j++ {
		e.terms[j] = h[j-1]
		e.norm += math.Abs(h[j-1].Amplitude)
	}

	return e
}

// Terms returns a copy of harmonics 1..5.
func (e Envelope) Terms() []Harmonic {
	out := make([]Harmonic, Harmonics)
	copy(out, e.terms[1:])

	return out
}

// Norm returns Σ|a_j|.
func (e Envelope) Norm() float64 { return e.norm }

// At evaluates k(φ).
func (e Envelope) At(phi float64) float64 {
	var k float64
	for j, h := range e.terms {
		k += h.Amplitude * math.Sin(float64(j)*phi+h.Phase)
	}

	return k
}

// Perturbation returns k(φ)/norm in [-1, 1], or 0 for an all-zero envelope.
func (e Envelope) Perturbation(phi float64) float64 {
	if e.norm == 0 {
		return 0
	}

	return e.At(phi) / e.norm
}
