/*
Package probatix provides data structures for probabilistic set-membership
testing.

A Bloom filter is a space-efficient probabilistic data structure that is used
to test whether an element is a member of a set. It provides a way to check
for the presence of an element without storing the set itself, trading a
tunable false-positive rate for sub-linear memory. A lookup that returns
false is always correct; a lookup that returns true may be a false positive.
Refer: https://web.stanford.edu/~balaji/papers/bloom.pdf

A counting Bloom filter replaces each bit with an 8-bit counter, which makes
removal possible at the cost of 8x the memory plus overflow and underflow
bookkeeping on every mutation.
Refer: https://www.eecs.harvard.edu/~michaelm/postscripts/esa2006b.pdf

This root package holds the parameter mathematics shared by both filter
kinds: structure sizing, hash-probe counts, realized false-positive rates
and memory accounting. The filters themselves live in the filters
subpackage, their storage backends in bitset, and the hash-pair derivation
in hash.
*/
package probatix

import (
	"fmt"
	"math"
)

const (
	// MinSize is the smallest permitted number of slots in a filter.
	MinSize uint = 8

	// MaxHashCount is the largest permitted number of hash probes.
	MaxHashCount uint = 64
)

// Parameters is a derived (size, hash count, memory) triple. It is
// immutable once bound to a filter; no filter operation mutates it.
type Parameters struct {
	// Size is the number of bit or counter slots, always a positive
	// multiple of 8 and at least MinSize.
	Size uint

	// HashCount is the number of probe positions derived per element,
	// in [1, MaxHashCount].
	HashCount uint

	// MemoryBytes is ceil(Size/8) for a bit-vector filter. A counting
	// filter spends one byte per slot, so it uses Size bytes instead.
	MemoryBytes uint
}

// OptimalSize returns the slot count required to hold capacity elements at
// the target false-positive rate:
//
//	m = ceil(-n * ln(e) / ln(2)^2)
//
// rounded up to the next multiple of 8 and floored at MinSize.
func OptimalSize(capacity uint, errorRate float64) (uint, error) {
	if capacity == 0 {
		return 0, fmt.Errorf("%w: capacity must be greater than 0", ErrInvalidParameter)
	}
	if errorRate <= 0 || errorRate >= 1 {
		return 0, fmt.Errorf("%w: error rate %v must be in (0, 1)", ErrInvalidParameter, errorRate)
	}
	size := uint(math.Ceil(-(float64(capacity) * math.Log(errorRate)) / (math.Ln2 * math.Ln2)))
	return NormalizeSize(size), nil
}

// OptimalHashCount returns the probe count that minimizes the
// false-positive rate for a filter of the given size holding capacity
// elements:
//
//	k = round((m/n) * ln(2))
//
// clamped to [1, MaxHashCount].
func OptimalHashCount(size, capacity uint) (uint, error) {
	if size == 0 {
		return 0, fmt.Errorf("%w: size must be greater than 0", ErrInvalidParameter)
	}
	if capacity == 0 {
		return 0, fmt.Errorf("%w: capacity must be greater than 0", ErrInvalidParameter)
	}
	k := uint(math.Round(float64(size) / float64(capacity) * math.Ln2))
	if k < 1 {
		k = 1
	}
	if k > MaxHashCount {
		k = MaxHashCount
	}
	return k, nil
}

// FalsePositiveRate returns the realized false-positive rate of a filter of
// the given size and probe count after inserted elements:
//
//	e = (1 - exp(-k*n/m))^k
//
// clamped to [0, 1].
func FalsePositiveRate(size, hashCount, inserted uint) (float64, error) {
	if size == 0 || hashCount == 0 || inserted == 0 {
		return 0, fmt.Errorf("%w: size, hash count and inserted count must be greater than 0", ErrInvalidParameter)
	}
	rate := math.Pow(1-math.Exp(-float64(hashCount)*float64(inserted)/float64(size)), float64(hashCount))
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return rate, nil
}

// MemoryBytes returns ceil(size/8), the bytes needed to store size bits.
func MemoryBytes(size uint) uint {
	return (size + 7) / 8
}

// NormalizeSize rounds size up to the next multiple of 8 and floors it at
// MinSize. Both the derived and the explicit construction paths apply it,
// so a filter's slot count is always byte-aligned.
func NormalizeSize(size uint) uint {
	if size < MinSize {
		return MinSize
	}
	if rem := size % 8; rem != 0 {
		size += 8 - rem
	}
	return size
}

// OptimalParameters derives the full parameter triple for a filter meant to
// hold capacity elements at the target false-positive rate. The result is
// deterministic: equal inputs always produce equal triples.
func OptimalParameters(capacity uint, errorRate float64) (Parameters, error) {
	size, err := OptimalSize(capacity, errorRate)
	if err != nil {
		return Parameters{}, err
	}
	hashCount, err := OptimalHashCount(size, capacity)
	if err != nil {
		return Parameters{}, err
	}
	return Parameters{Size: size, HashCount: hashCount, MemoryBytes: MemoryBytes(size)}, nil
}
