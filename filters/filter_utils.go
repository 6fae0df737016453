package filters

import (
	"github.com/probatix/probatix/hash"
)

// probePositions derives the numHashes probe positions for data using
// Kirsch-Mitzenmacher double hashing: position i is (h1 + i*h2) mod size.
// Two hash computations stand in for numHashes independent ones.
func probePositions(data []byte, numHashes, size uint) []uint {
	h1, h2 := hash.Pair(data)
	positions := make([]uint, numHashes)
	for i := uint(0); i < numHashes; i++ {
		positions[i] = uint((h1 + uint64(i)*h2) % uint64(size))
	}
	return positions
}
