// SPDX-License-Identifier: MIT

package heightmap

import "math/bits"

// RoundUpSize turns a requested image size into a valid generator size:
// values below MinSize become MinSize, anything else is rounded up to the
// next power of two (256 stays 256, 257 becomes 512).
func RoundUpSize(n int) int {
	if n < MinSize {
		return MinSize
	}

	return 1 << bits.Len(uint(n-1))
}

// ValidSize reports whether size is a power of two no smaller than MinSize.
func ValidSize(size int) bool {
	return size >= MinSize && size&(size-1) == 0
}
