// SPDX-License-Identifier: MIT

package heightmap

import (
	"fmt"

	"github.com/Jajcus/vulkanplay/matrix"
	"github.com/Jajcus/vulkanplay/rng"
)

// field is the single owned buffer shared by every refinement level.
// n is the side length (size+1); cell (i, j) lives at v[i*n+j].
type field struct {
	n   int
	v   []float64
	src rng.Source
}

func (f *field) at(i, j int) float64 { return f.v[i*f.n+j] }

func (f *field) set(i, j int, x float64) { f.v[i*f.n+j] = x }

// Generate builds a (size+1)×(size+1) diamond-square heightmap normalised to
// [0, MaxValue]. The extra row and column are the far boundary of the last
// squares; image writers usually crop them (matrix.Crop(grid, size, size)).
//
// Algorithm Outline:
//  1. Validate size, source and options.
//  2. Seed the four corners (see Corners for draw order).
//  3. refine(size, magnitude): diamond pass, square pass, magnitude *= reduction,
//     then the same on step/2 until step < 2.
//  4. Min-max normalise; a perfectly flat field becomes all zero.
//
// Errors:
//   - ErrInvalidSize, ErrNilSource, ErrInvalidMagnitude,
//     ErrInvalidReduction, ErrInvalidCornerScale.
//
// Complexity: Time O(size²), Memory O(size²).
func Generate(size int, src rng.Source, opts ...Option) (*matrix.Dense, error) {
	grid, err := Displace(size, src, opts...)
	if err != nil {
		return nil, err
	}
	if err = matrix.RescaleInPlace(grid, 0, MaxValue); err != nil {
		return nil, fmt.Errorf("heightmap: normalise: %w", err)
	}

	return grid, nil
}

// Displace runs the same seeding and refinement as Generate but returns the
// raw, un-normalised field. It consumes exactly the same draws from src.
func Displace(size int, src rng.Source, opts ...Option) (*matrix.Dense, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("Displace(%d): %w", size, ErrInvalidSize)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	n := size + 1
	f := &field{n: n, v: make([]float64, n*n), src: src}

	f.set(0, 0, rng.Scaled(src, o.corners[0]))
	f.set(0, size, rng.Scaled(src, o.corners[1]))
	f.set(size, 0, rng.Scaled(src, o.corners[2]))
	f.set(size, size, rng.Scaled(src, o.corners[3]))

	f.refine(size, o.magnitude, o.reduction)

	grid, err := matrix.NewDenseFrom(n, n, f.v)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}

	return grid, nil
}

// refine performs one diamond pass and one square pass per level, halving the
// step and reducing the magnitude until the step drops below 2.
// Levels run strictly in sequence; each reads the previous level's cells.
func (f *field) refine(step int, mag, red float64) {
	for ; step >= 2; step /= 2 {
		last := f.n - 1
		half := step / 2

		for i := 0; i < last; i += step {
			for j := 0; j < last; j += step {
				f.diamond(i, j, step, mag)
			}
		}

		for i := 0; i <= last; i += step {
			for j := 0; j <= last; j += step {
				if i < last {
					f.square(i+half, j, half, mag)
				}
				if j < last {
					f.square(i, j+half, half, mag)
				}
			}
		}

		mag *= red
	}
}

// diamond sets the centre of the square with top-left corner (i, j) and side
// step to the mean of its four corners plus a draw in [-mag, +mag).
func (f *field) diamond(i, j, step int, mag float64) {
	half := step / 2
	i1, j1 := i+step, j+step

	a := f.at(i, j)
	b := f.at(i1, j)
	c := f.at(i1, j1)
	d := f.at(i, j1)

	f.set(i+half, j+half, (a+b+c+d)/4.0+rng.Scaled(f.src, mag))
}

// square sets (i, j) to the mean of its in-bounds axis neighbours at distance
// dist plus a draw in [-mag, +mag). Missing neighbours contribute neither to
// the sum nor to the divisor; with no neighbours the cell is left untouched
// and nothing is drawn.
func (f *field) square(i, j, dist int, mag float64) {
	var a, b, c, d float64
	div := 4.0

	if i-dist >= 0 {
		a = f.at(i-dist, j)
	} else {
		div--
	}
	if j-dist >= 0 {
		b = f.at(i, j-dist)
	} else {
		div--
	}
	if i+dist < f.n {
		c = f.at(i+dist, j)
	} else {
		div--
	}
	if j+dist < f.n {
		d = f.at(i, j+dist)
	} else {
		div--
	}

	if div == 0 {
		return
	}
	f.set(i, j, (a+b+c+d)/div+rng.Scaled(f.src, mag))
}
