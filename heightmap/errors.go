// SPDX-License-Identifier: MIT

package heightmap

import "errors"

var (
	// ErrInvalidSize indicates a size below MinSize or not a power of two.
	// Use RoundUpSize to turn an arbitrary request into a valid size.
	ErrInvalidSize = errors.New("heightmap: size must be a power of two >= 2")

	// ErrNilSource indicates a nil rng.Source.
	ErrNilSource = errors.New("heightmap: random source is nil")

	// ErrInvalidMagnitude indicates a negative or non-finite magnitude.
	ErrInvalidMagnitude = errors.New("heightmap: magnitude must be finite and >= 0")

	// ErrInvalidReduction indicates a reduction factor outside (0, 1).
	ErrInvalidReduction = errors.New("heightmap: reduction must be in (0, 1)")

	// ErrInvalidCornerScale indicates a non-finite corner scale.
	ErrInvalidCornerScale = errors.New("heightmap: corner scales must be finite")

	// ErrInvalidStep indicates a non-positive or non-finite world step in Sample.
	ErrInvalidStep = errors.New("heightmap: sample step must be finite and > 0")
)
