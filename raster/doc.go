// SPDX-License-Identifier: MIT

// Package raster encodes generated grids as images and raw height files.
//
// What:
//
//   - Gray: 8-bit greyscale image of a [0, 255] grid.
//   - Tint: material-coloured heightmap preview (CIE-L*a*b* blends).
//   - Coast: HSLuv sea-to-land preview of an island mask.
//   - EncodeRaw / DecodeRaw: headerless row-major byte heightmaps.
//   - WriteFile / Save: atomic writes to a billy.Filesystem (temp file + rename).
//
// Pixel (x, y) of every image is grid row y, column x. With crop set the
// last row and column are dropped, turning a (size+1)² heightmap into a
// size×size image.
//
// Errors:
//
//   - ErrUnknownFormat: file name extension is neither .png nor .raw.
//   - ErrShortRead: raw input ended before width×depth bytes.
//   - ErrCrop: crop requested on a grid with a single row or column.
package raster
