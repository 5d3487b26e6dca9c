// SPDX-License-Identifier: MIT

// Package island defines envelope types, options and defaults.
package island

import "math"

const (
	// Harmonics is the number of random harmonics per envelope (j = 1..5).
	Harmonics = 5

	// DefaultDecay is the amplitude ratio between successive harmonics.
	DefaultDecay = 0.9

	// BandDivisor splits the base radius: the falloff band is r_max/BandDivisor.
	BandDivisor = 6

	// MaxValue is the opaque mask value.
	MaxValue = 255.0
)

// Harmonic is one term a·sin(j·φ + p) of an envelope.
type Harmonic struct {
	Amplitude float64
	Phase     float64
}

// Option mutates generator options.
type Option func(*Options)

// Options is the resolved generator configuration.
type Options struct {
	decay   float64 // DefaultDecay
	workers int     // 1; 0 is treated as 1
}

// WithDecay sets the amplitude decay between successive harmonics.
func WithDecay(d float64) Option {
	return func(o *Options) { o.decay = d }
}

// WithWorkers evaluates pixels on n goroutines (row bands). The output does not
// depend on n: every random draw happens before the pixel pass.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) (Options, error) {
	o := Options{decay: DefaultDecay, workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if math.IsNaN(o.decay) || o.decay <= 0 || o.decay > 1 {
		return o, ErrInvalidDecay
	}
	if o.workers < 0 {
		return o, ErrInvalidWorkers
	}
	if o.workers == 0 {
		o.workers = 1
	}

	return o, nil
}
