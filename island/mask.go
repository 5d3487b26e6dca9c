// SPDX-License-Identifier: MIT

package island

import (
	"fmt"
	"math"
	"sync"

	"github.com/Jajcus/vulkanplay/matrix"
	"github.com/Jajcus/vulkanplay/rng"
)

// Geometry holds the base radii of a width×height mask.
//
//	RMax  = min(CX, CY)
//	RBand = RMax / BandDivisor
//	ROut  = RMax - RBand
//	RIn   = ROut - 2·RBand
type Geometry struct {
	CX, CY float64
	RMax   float64
	RBand  float64
	ROut   float64
	RIn    float64
}

// NewGeometry computes the geometry for a width×height image.
func NewGeometry(width, height int) Geometry {
	cx, cy := float64(width)/2, float64(height)/2
	rMax := math.Min(cx, cy)
	band := rMax / BandDivisor
	out := rMax - band

	return Geometry{CX: cx, CY: cy, RMax: rMax, RBand: band, ROut: out, RIn: out - 2*band}
}

// Mask is a fully drawn coastline: two envelopes over a fixed geometry.
// It evaluates pixels without allocating a grid and is safe for concurrent
// reads.
type Mask struct {
	Width, Height int
	Inner, Outer  Envelope
	Geometry
	workers int
}

// NewMask draws the inner envelope and then the outer envelope from src.
// Errors: ErrInvalidDimension, ErrNilSource, ErrInvalidDecay, ErrInvalidWorkers.
func NewMask(width, height int, src rng.Source, opts ...Option) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewMask(%d,%d): %w", width, height, ErrInvalidDimension)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	inner := newEnvelope(src, o.decay)
	outer := newEnvelope(src, o.decay)

	return &Mask{
		Width:    width,
		Height:   height,
		Inner:    inner,
		Outer:    outer,
		Geometry: NewGeometry(width, height),
		workers:  o.workers,
	}, nil
}

// Radii returns the perturbed inner and outer boundary radii at angle φ.
func (m *Mask) Radii(phi float64) (r1, r2 float64) {
	r1 = m.RIn + m.RBand*m.Inner.Perturbation(phi)
	r2 = m.ROut + m.RBand*m.Outer.Perturbation(phi)

	return r1, r2
}

// ValueAt returns the mask opacity in [0, 1] at polar offset (r, φ) from the
// centre. It is non-increasing in r for a fixed φ.
func (m *Mask) ValueAt(r, phi float64) float64 {
	r1, r2 := m.Radii(phi)
	switch {
	case r < r1 || r2 == r1:
		return 1
	case r > r2:
		return 0
	default:
		return 1 - (r-r1)/(r2-r1)
	}
}

// Value returns the mask opacity in [0, 1] at pixel (x, y).
func (m *Mask) Value(x, y int) float64 {
	dx, dy := float64(x)-m.CX, float64(y)-m.CY

	return m.ValueAt(math.Sqrt(dx*dx+dy*dy), math.Atan2(dy, dx))
}

// Pixel returns round(255·Value(x, y)).
func (m *Mask) Pixel(x, y int) float64 {
	return math.Round(MaxValue * m.Value(x, y))
}

// Render evaluates every pixel into a Height×Width grid; pixel (x, y) is
// stored at row y, column x.
func (m *Mask) Render() (*matrix.Dense, error) {
	data := make([]float64, m.Width*m.Height)
	rows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			base := y * m.Width
			for x := 0; x < m.Width; x++ {
				data[base+x] = m.Pixel(x, y)
			}
		}
	}

	workers := m.workers
	if workers > m.Height {
		workers = m.Height
	}
	if workers <= 1 {
		rows(0, m.Height)
	} else {
		var wg sync.WaitGroup
		band := (m.Height + workers - 1) / workers
		for y0 := 0; y0 < m.Height; y0 += band {
			y1 := min(y0+band, m.Height)
			wg.Add(1)
			go func(y0, y1 int) {
				defer wg.Done()
				rows(y0, y1)
			}(y0, y1)
		}
		wg.Wait()
	}

	grid, err := matrix.NewDenseFrom(m.Height, m.Width, data)
	if err != nil {
		return nil, fmt.Errorf("island: %w", err)
	}

	return grid, nil
}

// Generate draws a mask from src and renders it into a height×width grid of
// integers in [0, 255] (255 = land, 0 = sea).
//
// Algorithm Outline:
//  1. Draw the inner then the outer envelope (ten draws each).
//  2. Derive the base radii from min(width, height).
//  3. For every pixel compute (r, φ), the perturbed radii r1, r2 and the
//     linear falloff between them; round 255·value.
//
// Complexity: Time O(W×H), Memory O(W×H).
func Generate(width, height int, src rng.Source, opts ...Option) (*matrix.Dense, error) {
	m, err := NewMask(width, height, src, opts...)
	if err != nil {
		return nil, err
	}

	return m.Render()
}
