package filters

import (
	"bytes"
	"fmt"
	"math"

	"github.com/probatix/probatix"
)

// CountingBloomFilter is the removable membership filter: one 8-bit counter
// per slot instead of one bit. Insert and Remove are two-phase
// check-then-commit operations; either all k counters change or none do, so
// no counter ever leaves [0, 255].
//
// Remove on an element that was never inserted is a documented misuse
// hazard: the zero-check catches most cases, but slot sharing can let such
// a call decrement counters belonging to other elements and introduce
// false negatives. The filter cannot detect that beyond its own checks.
type CountingBloomFilter struct {
	size      uint
	numHashes uint
	counters  []byte
}

// NewCountingBloomFilterWithCounters binds explicit parameters to an
// existing counter slice of exactly size bytes. It is the primitive the
// other constructors call; the slice is used as-is, not zeroed.
func NewCountingBloomFilterWithCounters(size, numHashes uint, counters []byte) (*CountingBloomFilter, error) {
	size, err := checkExplicitParams(size, numHashes)
	if err != nil {
		return nil, err
	}
	if uint(len(counters)) != size {
		return nil, fmt.Errorf("%w: counter slice length %d doesn't match filter size %d", probatix.ErrInvalidParameter, len(counters), size)
	}
	return &CountingBloomFilter{size, numHashes, counters}, nil
}

// NewCountingBloomFilter derives (size, numHashes) for the given capacity
// and target false-positive rate and allocates owned storage, one byte per
// slot.
func NewCountingBloomFilter(capacity uint, errorRate float64) (*CountingBloomFilter, error) {
	params, err := probatix.OptimalParameters(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	return NewCountingBloomFilterWithCounters(params.Size, params.HashCount, make([]byte, params.Size))
}

// NewCountingBloomFilterWithBuffer is NewCountingBloomFilter over a
// caller-supplied buffer. The buffer must hold at least size bytes; it is
// truncated to that length and zeroed, and must outlive the filter.
func NewCountingBloomFilterWithBuffer(capacity uint, errorRate float64, buf []byte) (*CountingBloomFilter, error) {
	params, err := probatix.OptimalParameters(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	counters, err := bindCounterBuffer(params.Size, buf)
	if err != nil {
		return nil, err
	}
	return NewCountingBloomFilterWithCounters(params.Size, params.HashCount, counters)
}

// NewCountingBloomFilterWithSize builds a filter from explicit parameters
// with owned storage. size is rounded up to the next multiple of 8.
func NewCountingBloomFilterWithSize(size, numHashes uint) (*CountingBloomFilter, error) {
	size, err := checkExplicitParams(size, numHashes)
	if err != nil {
		return nil, err
	}
	return NewCountingBloomFilterWithCounters(size, numHashes, make([]byte, size))
}

// NewCountingBloomFilterWithSizeAndBuffer builds a filter from explicit
// parameters over a caller-supplied buffer.
func NewCountingBloomFilterWithSizeAndBuffer(size, numHashes uint, buf []byte) (*CountingBloomFilter, error) {
	size, err := checkExplicitParams(size, numHashes)
	if err != nil {
		return nil, err
	}
	counters, err := bindCounterBuffer(size, buf)
	if err != nil {
		return nil, err
	}
	return NewCountingBloomFilterWithCounters(size, numHashes, counters)
}

func bindCounterBuffer(size uint, buf []byte) ([]byte, error) {
	if uint(len(buf)) < size {
		return nil, fmt.Errorf("%w: %d counters need %d bytes, buffer holds %d", probatix.ErrBufferTooSmall, size, size, len(buf))
	}
	buf = buf[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf, nil
}

// Insert adds data to the filter. It returns false and mutates nothing
// when any target counter lacks the headroom to take the probes landing on
// it, signaling counter saturation; the caller can rebuild with larger
// parameters. Distinct from capacity exhaustion, which only degrades the
// false-positive rate.
func (f *CountingBloomFilter) Insert(data []byte) bool {
	positions := probePositions(data, f.numHashes, f.size)
	for _, pos := range positions {
		if f.counters[pos] > math.MaxUint8-probeMultiplicity(positions, pos) {
			return false
		}
	}
	for _, pos := range positions {
		f.counters[pos]++
	}
	return true
}

// InsertString is Insert over the raw bytes of data.
func (f *CountingBloomFilter) InsertString(data string) bool {
	return f.Insert([]byte(data))
}

// Remove deletes one insertion of data. It returns false and mutates
// nothing when any target counter holds fewer than the probes landing on
// it, which means the signature is not currently present: never inserted,
// already fully removed, or zeroed by a colliding removal.
func (f *CountingBloomFilter) Remove(data []byte) bool {
	positions := probePositions(data, f.numHashes, f.size)
	for _, pos := range positions {
		if f.counters[pos] < probeMultiplicity(positions, pos) {
			return false
		}
	}
	for _, pos := range positions {
		f.counters[pos]--
	}
	return true
}

// RemoveString is Remove over the raw bytes of data.
func (f *CountingBloomFilter) RemoveString(data string) bool {
	return f.Remove([]byte(data))
}

// probeMultiplicity counts how many of the derived positions equal pos.
// Double hashing can land several probes on one slot; the check phases
// must account for all of them or a commit could wrap a counter.
func probeMultiplicity(positions []uint, pos uint) uint8 {
	var n uint8
	for _, q := range positions {
		if q == pos {
			n++
		}
	}
	return n
}

// Lookup reports whether data might have been inserted: true iff every
// target counter is nonzero. The no-false-negative guarantee of the
// bit-vector filter carries over provided Remove is only ever called on
// elements actually present.
func (f *CountingBloomFilter) Lookup(data []byte) bool {
	for _, pos := range probePositions(data, f.numHashes, f.size) {
		if f.counters[pos] == 0 {
			return false
		}
	}
	return true
}

// LookupString is Lookup over the raw bytes of data.
func (f *CountingBloomFilter) LookupString(data string) bool {
	return f.Lookup([]byte(data))
}

// Clear zeroes every counter.
func (f *CountingBloomFilter) Clear() {
	for i := range f.counters {
		f.counters[i] = 0
	}
}

// CounterStatistics summarizes the live counter population.
type CounterStatistics struct {
	// NonZero is the number of counters currently above zero.
	NonZero uint

	// Max is the largest counter value.
	Max uint8

	// Mean is the mean of the nonzero counters, 0 when there are none.
	Mean float64
}

// GetStatistics scans all counters and returns their population summary.
func (f *CountingBloomFilter) GetStatistics() CounterStatistics {
	var stats CounterStatistics
	var sum uint
	for _, c := range f.counters {
		if c == 0 {
			continue
		}
		stats.NonZero++
		sum += uint(c)
		if c > stats.Max {
			stats.Max = c
		}
	}
	if stats.NonZero > 0 {
		stats.Mean = float64(sum) / float64(stats.NonZero)
	}
	return stats
}

// ApproximateCount estimates the number of elements currently present as
// the mean nonzero counter magnitude times the nonzero count, divided by
// the hash count. This is a deliberately coarse heuristic, less rigorous
// than the bit-vector estimator; treat it as an order-of-magnitude signal.
func (f *CountingBloomFilter) ApproximateCount() uint {
	stats := f.GetStatistics()
	if stats.NonZero == 0 {
		return 0
	}
	return uint(math.Round(stats.Mean * float64(stats.NonZero) / float64(f.numHashes)))
}

// ApproachingOverflow reports whether any counter has reached threshold
// times the counter maximum of 255. A threshold outside (0, 1] defaults to
// 0.9. It is a proactive health signal: rebuild with larger parameters
// before Insert starts declining.
func (f *CountingBloomFilter) ApproachingOverflow(threshold float64) bool {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.9
	}
	limit := threshold * math.MaxUint8
	for _, c := range f.counters {
		if float64(c) >= limit {
			return true
		}
	}
	return false
}

// GetCounters exposes the raw counter storage without copying. It is the
// hook for a caller-supplied codec; the filter defines no wire format of
// its own. The returned slice aliases live filter memory and must not be
// mutated.
func (f *CountingBloomFilter) GetCounters() []byte {
	return f.counters
}

// GetSize returns the number of counter slots.
func (f *CountingBloomFilter) GetSize() uint {
	return f.size
}

// GetNumHashes returns the number of probe positions per element.
func (f *CountingBloomFilter) GetNumHashes() uint {
	return f.numHashes
}

// GetMemoryBytes returns the storage footprint in bytes, one byte per slot.
func (f *CountingBloomFilter) GetMemoryBytes() uint {
	return f.size
}

// Equals reports whether both filters have identical parameters and
// counter contents.
func (f *CountingBloomFilter) Equals(other *CountingBloomFilter) bool {
	return f.size == other.size &&
		f.numHashes == other.numHashes &&
		bytes.Equal(f.counters, other.counters)
}
