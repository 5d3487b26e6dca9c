// SPDX-License-Identifier: MIT

package rng

// Sequence is a scripted Source that returns its values in order and wraps
// around at the end. An empty Sequence always returns 0.
type Sequence struct {
	values []float64
	next   int
}

var _ Source = (*Sequence)(nil)

// NewSequence returns a Sequence over a copy of values.
func NewSequence(values ...float64) *Sequence {
	vs := make([]float64, len(values))
	copy(vs, values)

	return &Sequence{values: vs}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)

	return v
}

// Counter wraps a Source and counts the draws taken from it.
type Counter struct {
	Source Source
	N      int
}

var _ Source = (*Counter)(nil)

// Float64 forwards to the wrapped Source and increments N.
func (c *Counter) Float64() float64 {
	c.N++

	return c.Source.Float64()
}
