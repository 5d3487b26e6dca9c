// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path"
	"strings"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/Jajcus/vulkanplay/material"
	"github.com/Jajcus/vulkanplay/matrix"
)

// Format is an output file encoding.
type Format int

const (
	// PNG is an 8-bit image in the style chosen by the caller.
	PNG Format = iota
	// Raw is one byte per cell, row-major, with no header.
	Raw
)

// String returns the file extension of f without the dot.
func (f Format) String() string {
	if f == Raw {
		return "raw"
	}

	return "png"
}

// FormatFor picks the format from the extension of name (case-insensitive).
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".raw":
		return Raw, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Style selects how a grid is rendered into a PNG.
type Style int

const (
	// StyleGray writes the grid as grayscale heights.
	StyleGray Style = iota
	// StyleTint shades each cell by its terrain material.
	StyleTint
	// StyleCoast maps mask values through CoastPalette.
	StyleCoast
)

// Render draws m in the given style. StyleTint uses the default thresholds.
func Render(m matrix.Matrix, style Style, crop bool) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch style {
	case StyleTint:
		img, err = Tint(m, material.DefaultThresholds(), crop)
	case StyleCoast:
		img, err = Coast(m, crop)
	default:
		img, err = Gray(m, crop)
	}
	if err != nil {
		return nil, err
	}

	return img, nil
}

// WriteFile writes name on fs through enc. The data goes to a temporary file
// in the same directory that is renamed over name once complete, so readers
// never see a partial file. On failure the temporary file is removed.
func WriteFile(fs billy.Filesystem, name string, enc func(io.Writer) error) (err error) {
	dir := path.Dir(name)
	if dir != "." {
		if err = fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	temp, err := fs.TempFile(dir, "."+path.Base(name)+".")
	if err != nil {
		return err
	}
	err = enc(temp)
	err = multierr.Append(err, temp.Close())
	if err != nil {
		return multierr.Append(err, fs.Remove(temp.Name()))
	}

	return fs.Rename(temp.Name(), name)
}

// Save encodes m according to the extension of name: .raw writes bytes,
// .png renders with style.
func Save(fs billy.Filesystem, name string, m matrix.Matrix, style Style, crop bool) error {
	format, err := FormatFor(name)
	if err != nil {
		return err
	}
	if format == Raw {
		return WriteFile(fs, name, func(w io.Writer) error {
			return EncodeRaw(w, m, crop)
		})
	}

	img, err := Render(m, style, crop)
	if err != nil {
		return err
	}

	return WriteFile(fs, name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}
