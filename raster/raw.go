// SPDX-License-Identifier: MIT

package raster

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/Jajcus/vulkanplay/matrix"
)

// EncodeRaw writes m as headerless row-major bytes, one per cell, rounded and
// clamped into [0, 255].
func EncodeRaw(w io.Writer, m matrix.Matrix, crop bool) error {
	win, err := window(m, crop)
	if err != nil {
		return fmt.Errorf("EncodeRaw: %w", err)
	}
	bw := bufio.NewWriter(w)
	err = each(win, func(_, _ int, v float64) {
		// bufio.Writer keeps the first error and reports it from Flush.
		_ = bw.WriteByte(Byte(v))
	})
	if err != nil {
		return fmt.Errorf("EncodeRaw: %w", err)
	}

	return bw.Flush()
}

// DecodeRaw reads width×depth bytes into a depth×width grid holding
// byte − seaLevel, so the waterline sits at 0.
// Errors: ErrInvalidDimensions, ErrShortRead, or the reader's own error.
func DecodeRaw(r io.Reader, width, depth int, seaLevel float64) (*matrix.Dense, error) {
	if width <= 0 || depth <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]byte, width*depth)
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("DecodeRaw: read %d of %d bytes: %w", n, len(buf), ErrShortRead)
	}
	if err != nil {
		return nil, fmt.Errorf("DecodeRaw: %w", err)
	}

	data := make([]float64, len(buf))
	for i, b := range buf {
		data[i] = float64(b) - seaLevel
	}

	return matrix.NewDenseFrom(depth, width, data)
}
