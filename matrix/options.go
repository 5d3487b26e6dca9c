// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation in Set.
// Generated grids must be finite, so the guard is on unless a caller opts out
// to stage dirty data before ReplaceInfNaN.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set store NaN and ±Inf.
// Use it only for staging buffers that are sanitised with ReplaceInfNaN.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
