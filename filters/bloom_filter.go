package filters

import (
	"fmt"
	"math"

	"github.com/probatix/probatix"
	"github.com/probatix/probatix/bitset"
)

// BloomFilter is the bit-vector membership filter. Size and hash count are
// fixed at construction; once a bit is set only Clear unsets it.
type BloomFilter struct {
	size      uint
	numHashes uint
	bits      bitset.IBitSet
}

// NewBloomFilterWithBitSet binds explicit parameters to an existing bitset.
// It is the primitive the other constructors call.
func NewBloomFilterWithBitSet(size, numHashes uint, bits bitset.IBitSet) (*BloomFilter, error) {
	size, err := checkExplicitParams(size, numHashes)
	if err != nil {
		return nil, err
	}
	if bits.Size() != size {
		return nil, fmt.Errorf("%w: bitset size %d doesn't match filter size %d", probatix.ErrInvalidParameter, bits.Size(), size)
	}
	return &BloomFilter{size, numHashes, bits}, nil
}

// NewBloomFilter derives (size, numHashes) for the given capacity and
// target false-positive rate and allocates owned storage.
func NewBloomFilter(capacity uint, errorRate float64) (*BloomFilter, error) {
	params, err := probatix.OptimalParameters(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	return NewBloomFilterWithBitSet(params.Size, params.HashCount, bitset.NewBitSetMem(params.Size))
}

// NewBloomFilterWithBuffer is NewBloomFilter over a caller-supplied buffer.
// The buffer must hold at least ceil(size/8) bytes; it is truncated to that
// length and zeroed, and must outlive the filter.
func NewBloomFilterWithBuffer(capacity uint, errorRate float64, buf []byte) (*BloomFilter, error) {
	params, err := probatix.OptimalParameters(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	bits, err := bitset.NewBitSetBuf(params.Size, buf)
	if err != nil {
		return nil, err
	}
	return NewBloomFilterWithBitSet(params.Size, params.HashCount, bits)
}

// NewBloomFilterWithSize builds a filter from explicit parameters with
// owned storage. size is rounded up to the next multiple of 8.
func NewBloomFilterWithSize(size, numHashes uint) (*BloomFilter, error) {
	size, err := checkExplicitParams(size, numHashes)
	if err != nil {
		return nil, err
	}
	return NewBloomFilterWithBitSet(size, numHashes, bitset.NewBitSetMem(size))
}

// NewBloomFilterWithSizeAndBuffer builds a filter from explicit parameters
// over a caller-supplied buffer.
func NewBloomFilterWithSizeAndBuffer(size, numHashes uint, buf []byte) (*BloomFilter, error) {
	size, err := checkExplicitParams(size, numHashes)
	if err != nil {
		return nil, err
	}
	bits, err := bitset.NewBitSetBuf(size, buf)
	if err != nil {
		return nil, err
	}
	return NewBloomFilterWithBitSet(size, numHashes, bits)
}

func checkExplicitParams(size, numHashes uint) (uint, error) {
	if size == 0 {
		return 0, fmt.Errorf("%w: size must be greater than 0", probatix.ErrInvalidParameter)
	}
	if numHashes == 0 || numHashes > probatix.MaxHashCount {
		return 0, fmt.Errorf("%w: hash count %d must be in [1, %d]", probatix.ErrInvalidParameter, numHashes, probatix.MaxHashCount)
	}
	return probatix.NormalizeSize(size), nil
}

// Insert adds data to the filter. It is idempotent, never fails and
// returns the filter to allow for chaining.
func (f *BloomFilter) Insert(data []byte) *BloomFilter {
	for _, pos := range probePositions(data, f.numHashes, f.size) {
		f.bits.Insert(pos)
	}
	return f
}

// InsertString adds the raw bytes of data to the filter.
func (f *BloomFilter) InsertString(data string) *BloomFilter {
	return f.Insert([]byte(data))
}

// Lookup reports whether data might have been inserted. It short-circuits
// on the first unset probe, so definite negatives are usually cheaper than
// the full k probes.
func (f *BloomFilter) Lookup(data []byte) bool {
	for _, pos := range probePositions(data, f.numHashes, f.size) {
		if !f.bits.Has(pos) {
			return false
		}
	}
	return true
}

// LookupString is Lookup over the raw bytes of data.
func (f *BloomFilter) LookupString(data string) bool {
	return f.Lookup([]byte(data))
}

// Clear unsets every bit.
func (f *BloomFilter) Clear() {
	f.bits.Reset()
}

// ApproximateCount estimates the number of distinct elements inserted from
// the live bit population X:
//
//	n = round(-m * ln(1 - X/m) / k)
//
// A saturated filter returns the maximum uint, where the estimator is
// undefined.
func (f *BloomFilter) ApproximateCount() uint {
	x := f.bits.BitCount()
	if x == 0 {
		return 0
	}
	if x >= f.size {
		return ^uint(0)
	}
	m := float64(f.size)
	return uint(math.Round(-m * math.Log(1-float64(x)/m) / float64(f.numHashes)))
}

// PositiveRate returns the false-positive rate at the current estimated
// fill, 0 for an empty filter.
func (f *BloomFilter) PositiveRate() float64 {
	count := f.ApproximateCount()
	if count == 0 {
		return 0
	}
	rate, err := probatix.FalsePositiveRate(f.size, f.numHashes, count)
	if err != nil {
		return 0
	}
	return rate
}

// GetState exposes the raw bit storage without copying. It is the hook for
// a caller-supplied codec; the filter defines no wire format of its own.
// The returned slice aliases live filter memory and must not be mutated.
func (f *BloomFilter) GetState() []byte {
	return f.bits.Bytes()
}

// GetSize returns the number of bit slots.
func (f *BloomFilter) GetSize() uint {
	return f.size
}

// GetNumHashes returns the number of probe positions per element.
func (f *BloomFilter) GetNumHashes() uint {
	return f.numHashes
}

// GetMemoryBytes returns the storage footprint in bytes.
func (f *BloomFilter) GetMemoryBytes() uint {
	return probatix.MemoryBytes(f.size)
}

// Equals reports whether both filters have identical parameters and bit
// contents. Filters over different storage backends are not comparable.
func (f *BloomFilter) Equals(other *BloomFilter) (bool, error) {
	if f.size != other.size || f.numHashes != other.numHashes {
		return false, nil
	}
	return f.bits.Equals(other.bits)
}
