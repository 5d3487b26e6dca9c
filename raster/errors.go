// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrUnknownFormat indicates an output name without a supported extension.
	ErrUnknownFormat = errors.New("raster: unknown output format (want .png or .raw)")
	// ErrShortRead indicates a raw heightmap shorter than width×depth bytes.
	ErrShortRead = errors.New("raster: unexpected end of raw heightmap")
	// ErrCrop indicates a crop of a grid with fewer than two rows or columns.
	ErrCrop = errors.New("raster: grid too small to crop")
	// ErrInvalidDimensions indicates a non-positive raw width or depth.
	ErrInvalidDimensions = errors.New("raster: width and depth must be > 0")
)
