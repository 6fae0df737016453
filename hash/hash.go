// Package hash derives the deterministic hash pair that the filters expand
// into probe positions.
package hash

import "github.com/spaolacci/murmur3"

// Sum128 returns the raw 128-bit murmur3 hash of data as two 64-bit words.
func Sum128(data []byte) (uint64, uint64) {
	return murmur3.Sum128(data)
}

// Pair returns the (h1, h2) base pair used for double hashing. Identical
// inputs always yield identical pairs. h2 is forced to 1 when the hash
// produces 0, so the derived probe sequence h1 + i*h2 never collapses to a
// single position. A nonzero h2 that is a multiple of the filter size still
// degenerates; that residual risk is accepted.
func Pair(data []byte) (uint64, uint64) {
	h1, h2 := murmur3.Sum128(data)
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}
