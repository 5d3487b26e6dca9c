// SPDX-License-Identifier: MIT

package material

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Jajcus/vulkanplay/matrix"
)

// ErrThresholds indicates thresholds that are non-finite or decreasing.
var ErrThresholds = errors.New("material: thresholds must be finite and non-decreasing")

// Material is a terrain surface class.
type Material uint8

const (
	Water Material = iota
	Sand
	Grass
	Rock
	Snow

	// Count is the number of materials.
	Count = int(Snow) + 1
)

var names = [Count]string{"water", "sand", "grass", "rock", "snow"}

// String returns the lower-case material name.
func (m Material) String() string {
	if int(m) < Count {
		return names[m]
	}

	return fmt.Sprintf("material(%d)", uint8(m))
}

var (
	deepWater = colorful.Color{R: 0.04, G: 0.12, B: 0.33}
	palette   = [Count]colorful.Color{
		{R: 0.16, G: 0.40, B: 0.69}, // water
		{R: 0.86, G: 0.80, B: 0.58}, // sand
		{R: 0.30, G: 0.55, B: 0.22}, // grass
		{R: 0.48, G: 0.44, B: 0.40}, // rock
		{R: 0.96, G: 0.97, B: 0.98}, // snow
	}
)

// Color returns the base preview colour of m.
func (m Material) Color() colorful.Color {
	if int(m) < Count {
		return palette[m]
	}

	return colorful.Color{}
}

// Thresholds holds the lowest height of each material above water.
type Thresholds struct {
	Water float64 // heights below are water
	Grass float64 // [Water, Grass) is sand
	Rock  float64 // [Grass, Rock) is grass
	Snow  float64 // [Rock, Snow) is rock, the rest snow
}

// DefaultThresholds returns the 41/43/150/180 split.
func DefaultThresholds() Thresholds {
	return Thresholds{Water: 41, Grass: 43, Rock: 150, Snow: 180}
}

// Validate reports ErrThresholds unless Water ≤ Grass ≤ Rock ≤ Snow, all finite.
func (t Thresholds) Validate() error {
	prev := math.Inf(-1)
	for _, v := range [...]float64{t.Water, t.Grass, t.Rock, t.Snow} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < prev {
			return ErrThresholds
		}
		prev = v
	}

	return nil
}

// Classify maps a height byte to its material.
func (t Thresholds) Classify(h float64) Material {
	switch {
	case h < t.Water:
		return Water
	case h < t.Grass:
		return Sand
	case h < t.Rock:
		return Grass
	case h < t.Snow:
		return Rock
	default:
		return Snow
	}
}

// Classify maps h with DefaultThresholds.
func Classify(h float64) Material {
	return DefaultThresholds().Classify(h)
}

// band returns the height interval covered by m.
func (t Thresholds) band(m Material) (lo, hi float64) {
	switch m {
	case Water:
		return 0, t.Water
	case Sand:
		return t.Water, t.Grass
	case Grass:
		return t.Grass, t.Rock
	case Rock:
		return t.Rock, t.Snow
	default:
		return t.Snow, 255
	}
}

// Shade returns the preview colour of height h: water deepens towards 0,
// land materials drift halfway to the next material across their band
// (blended in CIE-L*a*b*), snow is flat.
func (t Thresholds) Shade(h float64) colorful.Color {
	m := t.Classify(h)
	lo, hi := t.band(m)
	if m == Snow || hi <= lo {
		return m.Color()
	}
	f := math.Max(0, math.Min(1, (h-lo)/(hi-lo)))
	if m == Water {
		return deepWater.BlendLab(m.Color(), f).Clamped()
	}

	return m.Color().BlendLab((m + 1).Color(), f/2).Clamped()
}

// Histogram counts the cells of each material in a height grid.
type Histogram [Count]int

// Total returns the number of classified cells.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}

	return n
}

// Fraction returns the share of cells of material m, or 0 for an empty histogram.
func (h Histogram) Fraction(m Material) float64 {
	total := h.Total()
	if total == 0 || int(m) >= Count {
		return 0
	}

	return float64(h[m]) / float64(total)
}

// Survey classifies every cell of grid.
// Errors: ErrThresholds, matrix.ErrNilMatrix.
func (t Thresholds) Survey(grid matrix.Matrix) (Histogram, error) {
	var h Histogram
	if err := t.Validate(); err != nil {
		return h, err
	}
	if err := matrix.ValidateNotNil(grid); err != nil {
		return h, fmt.Errorf("Survey: %w", err)
	}
	for i := 0; i < grid.Rows(); i++ {
		for j := 0; j < grid.Cols(); j++ {
			v, err := grid.At(i, j)
			if err != nil {
				return h, fmt.Errorf("Survey: %w", err)
			}
			h[t.Classify(v)]++
		}
	}

	return h, nil
}
