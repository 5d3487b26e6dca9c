// SPDX-License-Identifier: MIT

package heightmap

import (
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultMagnitude is the half-width of the first level's displacement.
	DefaultMagnitude = 10.0

	// DefaultReduction is the per-level magnitude decay.
	DefaultReduction = 0.5

	// MinSize is the smallest valid grid size (a 3×3 buffer).
	MinSize = 2

	// MaxValue is the upper bound of the normalised output range.
	MaxValue = 255.0
)

// Corners holds the scale of each seeded corner draw, in draw order:
// (0,0), (0,size), (size,0), (size,size).
type Corners [4]float64

// DefaultCornerScales seeds the origin corner ten times wider than the other
// three. The asymmetry is inherited behaviour rather than a modelling choice;
// pass WithCornerScales(Corners{1, 1, 1, 1}) for uniform corners.
var DefaultCornerScales = Corners{10, 1, 1, 1}

// Option mutates generator options.
type Option func(*Options)

// Options is the resolved generator configuration.
type Options struct {
	magnitude float64 // DefaultMagnitude
	reduction float64 // DefaultReduction
	corners   Corners // DefaultCornerScales
}

// WithMagnitude sets the initial displacement half-width.
func WithMagnitude(mag float64) Option {
	return func(o *Options) { o.magnitude = mag }
}

// WithReduction sets the geometric decay applied to the magnitude after each
// level; it must lie in (0, 1).
func WithReduction(red float64) Option {
	return func(o *Options) { o.reduction = red }
}

// WithCornerScales sets the scale of the four corner draws.
func WithCornerScales(c Corners) Option {
	return func(o *Options) { o.corners = c }
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := Options{
		magnitude: DefaultMagnitude,
		reduction: DefaultReduction,
		corners:   DefaultCornerScales,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if !isFinite(o.magnitude) || o.magnitude < 0 {
		return o, ErrInvalidMagnitude
	}
	if !isFinite(o.reduction) || o.reduction <= 0 || o.reduction >= 1 {
		return o, ErrInvalidReduction
	}
	for _, c := range o.corners {
		if !isFinite(c) {
			return o, ErrInvalidCornerScale
		}
	}

	return o, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
