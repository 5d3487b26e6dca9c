// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, documented entry points over the private kernels.
//   - Facades never change loop orders or numeric policy of the kernels.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a structural clone of m.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// MinMax returns the smallest and largest element of m.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func MinMax(m Matrix) (lo, hi float64, err error) {
	return minMax(m)
}

// RescaleInPlace linearly maps the observed range of d onto [lo, hi].
// A flat field becomes all lo; a field already spanning [lo, hi] is unchanged.
// Errors: ErrNilMatrix, ErrNaNInf (non-finite bounds or elements).
// Complexity: O(r*c), no allocation.
func RescaleInPlace(d *Dense, lo, hi float64) error {
	if d == nil {
		return matrixErrorf("Rescale", ErrNilMatrix)
	}

	return rescaleInPlace(d, lo, hi)
}

// Normalize returns a min-max rescaled copy of m in [lo, hi]; m is untouched.
// Complexity: O(r*c) time and space.
func Normalize(m Matrix, lo, hi float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Normalize", err)
	}
	out, err := ewMap("Normalize", m, func(v float64) float64 { return v })
	if err != nil {
		return nil, err
	}
	if err = rescaleInPlace(out, lo, hi); err != nil {
		return nil, matrixErrorf("Normalize", err)
	}

	return out, nil
}

// Clip returns a copy of m with every element clamped into [lo, hi].
func Clip(m Matrix, lo, hi float64) (*Dense, error) {
	return ewClipRange(m, lo, hi)
}

// Round returns a copy of m with every element rounded to the nearest integer
// (halves away from zero).
func Round(m Matrix) (*Dense, error) {
	return ewRound(m)
}

// ReplaceInfNaN returns a copy of m with NaN and ±Inf replaced by val.
// The copy has the NaN/Inf guard enabled.
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) {
	return ewReplaceInfNaN(m, val)
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports exact element-wise equality of same-shaped matrices.
func Equal(a, b Matrix) (bool, error) {
	return ewAllClose(a, b, 0, 0)
}

// Crop copies the top-left rows×cols window of m.
// Heightmaps carry one duplicate boundary row and column used only during
// generation; Crop(m, size, size) removes them.
// Errors: ErrInvalidDimensions (rows/cols ≤ 0), ErrDimensionMismatch (window
// larger than m).
// Complexity: O(rows*cols).
func Crop(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Crop", err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("Crop", ErrInvalidDimensions)
	}
	if rows > m.Rows() || cols > m.Cols() {
		return nil, matrixErrorf("Crop", ErrDimensionMismatch)
	}
	out, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf("Crop", err)
	}
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(out.data[i*cols:(i+1)*cols], d.data[i*d.c:i*d.c+cols])
		}
		out.validateNaNInf = d.validateNaNInf
		return out, nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, matrixErrorf("Crop", e)
			}
			out.data[i*cols+j] = v
		}
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, nil
}
