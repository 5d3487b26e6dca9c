// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small, private element-wise kernels (ew*) behind the public facades in
//     api.go: clamp, round, sanitise, compare.
//   - Keep all loops deterministic with a Dense fast-path over the flat buffer.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"math"
)

// ewMap copies X into a fresh Dense (guard off while mapping) applying f to
// every element. The output inherits X's NaN/Inf policy when X is *Dense.
func ewMap(tag string, X Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}
		out.validateNaNInf = d.validateNaNInf
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			out.data[i*c+j] = f(v)
		}
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, nil
}

// ewClipRange copies X clamping each entry into [lo, hi] (both finite).
// If lo > hi they are swapped.
func ewClipRange(X Matrix, lo, hi float64) (*Dense, error) {
	if isNonFinite(lo) || isNonFinite(hi) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return ewMap("Clip", X, func(v float64) float64 {
		if v < lo {
			return lo
		} else if v > hi {
			return hi
		}
		return v
	})
}

// ewRound copies X rounding each entry to the nearest integer, halves away
// from zero (math.Round).
func ewRound(X Matrix) (*Dense, error) {
	return ewMap("Round", X, math.Round)
}

// ewReplaceInfNaN copies X replacing NaN and ±Inf with val (finite).
func ewReplaceInfNaN(X Matrix, val float64) (*Dense, error) {
	if isNonFinite(val) {
		return nil, matrixErrorf("ReplaceInfNaN", ErrNaNInf)
	}
	out, err := ewMap("ReplaceInfNaN", X, func(v float64) float64 {
		if isNonFinite(v) {
			return val
		}
		return v
	})
	if err != nil {
		return nil, err
	}
	out.validateNaNInf = true

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalised to their absolute values.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	within := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
