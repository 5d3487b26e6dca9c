// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense is the concrete row-major grid used by every generator.
//   - Storage is a single flat []float64 (offset = i*c + j) so kernels and the
//     diamond-square recursion can index without per-row allocations.
//
// Determinism & Performance:
//   - All traversals are fixed i→j loops.
//   - At/Set are bounds-checked; package-internal kernels use the flat buffer.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxApply = "Apply"

	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an underlying error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order.
//   - validateNaNInf rejects NaN/Inf in Set when true.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: apply numeric policy from opts.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom wraps data as an r×c row-major Dense without copying; the
// caller hands over ownership of data.
// Errors: ErrInvalidDimensions (rows/cols ≤ 0), ErrDimensionMismatch
// (len(data) != rows*cols), ErrNaNInf (non-finite value under the guard).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for idx, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NewDenseFrom", idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// FromRows builds a Dense from a non-empty rectangular [][]float64,
// copying the input.
// Errors: ErrInvalidDimensions (empty), ErrNonRectangular (ragged),
// ErrNaNInf (non-finite value under the default policy).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", ErrNonRectangular)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf("FromRows", err)
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange for bad indices and ErrNaNInf for non-finite values
// when the NaN/Inf guard is on.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the NaN/Inf policy is preserved.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense) Data() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do calls f for each element in row-major order and stops early when f
// returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Under the NaN/Inf guard a non-finite result aborts with ErrNaNInf; elements
// written before the error stay updated.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
