// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Range statistics and min-max rescaling for generated fields.
//
// Degenerate ranges:
//   - A flat field (max == min) has no meaningful linear map; every element is
//     set to the target lower bound instead of dividing by zero.
//   - A field already spanning exactly [lo, hi] is left untouched, so
//     re-normalising is a bit-exact no-op.

package matrix

import "math"

// minMax returns the smallest and largest element of X.
// Errors: ErrNilMatrix, ErrNaNInf when X holds a non-finite value.
// Complexity: Time O(r*c), Space O(1).
func minMax(X Matrix) (lo, hi float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return 0, 0, matrixErrorf("MinMax", err)
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	visit := func(v float64) bool {
		if isNonFinite(v) {
			return false
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		return true
	}

	if d, ok := X.(*Dense); ok {
		for _, v := range d.data {
			if !visit(v) {
				return 0, 0, matrixErrorf("MinMax", ErrNaNInf)
			}
		}
		return lo, hi, nil
	}
	for i := 0; i < X.Rows(); i++ {
		for j := 0; j < X.Cols(); j++ {
			v, e := X.At(i, j)
			if e != nil {
				return 0, 0, matrixErrorf("MinMax", e)
			}
			if !visit(v) {
				return 0, 0, matrixErrorf("MinMax", ErrNaNInf)
			}
		}
	}

	return lo, hi, nil
}

// rescaleInPlace maps [min, max] of d linearly onto [lo, hi]:
//
//	out = lo + (v - min) * (hi - lo) / (max - min)
//
// The product can round one ulp past hi, so min and max are written as lo and
// hi directly and every other result is clamped into [lo, hi].
func rescaleInPlace(d *Dense, lo, hi float64) error {
	if isNonFinite(lo) || isNonFinite(hi) {
		return matrixErrorf("Rescale", ErrNaNInf)
	}
	mn, mx, err := minMax(d)
	if err != nil {
		return matrixErrorf("Rescale", err)
	}
	if mn == lo && mx == hi {
		return nil
	}
	if mx == mn {
		for idx := range d.data {
			d.data[idx] = lo
		}
		return nil
	}
	span, target := mx-mn, hi-lo
	for idx, v := range d.data {
		switch v {
		case mn:
			d.data[idx] = lo
		case mx:
			d.data[idx] = hi
		default:
			d.data[idx] = math.Min(hi, math.Max(lo, lo+(v-mn)*target/span))
		}
	}

	return nil
}
