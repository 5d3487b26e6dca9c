// SPDX-License-Identifier: MIT

package island

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("island: width and height must be > 0")
	// ErrNilSource indicates a nil rng.Source.
	ErrNilSource = errors.New("island: random source is nil")
	// ErrInvalidDecay indicates a decay factor outside (0, 1].
	ErrInvalidDecay = errors.New("island: decay must be in (0, 1]")
	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("island: workers must be >= 0")
)
