// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Jajcus/vulkanplay/material"
	"github.com/Jajcus/vulkanplay/matrix"
)

// window returns m, or m without its last row and column when crop is set.
func window(m matrix.Matrix, crop bool) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if !crop {
		return m, nil
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, ErrCrop
	}

	return matrix.Crop(m, m.Rows()-1, m.Cols()-1)
}

// Byte rounds v to the nearest integer and clamps it into [0, 255].
func Byte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

// each visits every cell of m as pixel (x, y).
func each(m matrix.Matrix, f func(x, y int, v float64)) error {
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			v, err := m.At(y, x)
			if err != nil {
				return err
			}
			f(x, y, v)
		}
	}

	return nil
}

// Gray renders m as an 8-bit greyscale image.
func Gray(m matrix.Matrix, crop bool) (*image.Gray, error) {
	w, err := window(m, crop)
	if err != nil {
		return nil, fmt.Errorf("Gray: %w", err)
	}
	img := image.NewGray(image.Rect(0, 0, w.Cols(), w.Rows()))
	err = each(w, func(x, y int, v float64) {
		img.Pix[y*img.Stride+x] = Byte(v)
	})
	if err != nil {
		return nil, fmt.Errorf("Gray: %w", err)
	}

	return img, nil
}

// Tint renders a heightmap with the material colours of th.
// Errors: material.ErrThresholds, ErrCrop, matrix.ErrNilMatrix.
func Tint(m matrix.Matrix, th material.Thresholds, crop bool) (*image.RGBA, error) {
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("Tint: %w", err)
	}
	w, err := window(m, crop)
	if err != nil {
		return nil, fmt.Errorf("Tint: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w.Cols(), w.Rows()))
	err = each(w, func(x, y int, v float64) {
		r, g, b := th.Shade(float64(Byte(v))).RGB255()
		img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
	})
	if err != nil {
		return nil, fmt.Errorf("Tint: %w", err)
	}

	return img, nil
}

// CoastPalette is the 256-entry HSLuv ramp used by Coast: index 0 is open sea,
// 255 solid land.
var CoastPalette = newCoastPalette()

func newCoastPalette() color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		t := float64(i) / 255
		c := colorful.HSLuv(250-130*t, 0.85, 0.30+0.40*t).Clamped()
		r, g, b := c.RGB255()
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}

	return pal
}

// Coast renders an island mask with CoastPalette.
func Coast(m matrix.Matrix, crop bool) (*image.Paletted, error) {
	w, err := window(m, crop)
	if err != nil {
		return nil, fmt.Errorf("Coast: %w", err)
	}
	img := image.NewPaletted(image.Rect(0, 0, w.Cols(), w.Rows()), CoastPalette)
	err = each(w, func(x, y int, v float64) {
		img.Pix[y*img.Stride+x] = Byte(v)
	})
	if err != nil {
		return nil, fmt.Errorf("Coast: %w", err)
	}

	return img, nil
}
