// Package bitset provides the bit storage backends used by the bit-vector
// Bloom filter. BitSetMem owns its memory; BitSetBuf borrows a
// caller-supplied byte buffer. The two are interchangeable behind IBitSet
// and produce the same LSB0 byte layout, so which one a filter binds is a
// placement policy, not a semantic difference.
package bitset

// IBitSet is a fixed-size sequence of bits addressed by slot index.
type IBitSet interface {
	// Has reports whether the bit at index is set.
	Has(index uint) bool

	// Insert sets the bit at index.
	Insert(index uint)

	// Reset clears every bit.
	Reset()

	// Size returns the number of bits.
	Size() uint

	// BitCount returns the number of set bits.
	BitCount() uint

	// Bytes exposes the bit storage as raw bytes without copying. Bit j
	// lives at byte j/8, bit j%8 (LSB0).
	Bytes() []byte

	// Equals reports whether the other bitset has identical contents.
	// It errors when the backends are of different implementations.
	Equals(other IBitSet) (bool, error)
}
