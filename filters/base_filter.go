/*
Package filters provides the membership filters built on the probatix
parameter mathematics.

BloomFilter is the classic bit-vector filter: insert-only, no false
negatives, O(k) operations over a fixed bit sequence. CountingBloomFilter
replaces each bit with an 8-bit counter, which buys removal at the cost of
8x memory and overflow/underflow bookkeeping; its Insert and Remove are
two-phase check-then-commit operations that either touch all k counters or
none.

Both kinds bind their parameters at construction and never change them.
Storage is either owned (allocated internally, released with the filter) or
borrowed from a caller-supplied byte buffer; behavior is identical either
way. The raw storage is exposed through GetState and GetCounters for a
caller-supplied codec to persist; the filters themselves perform no I/O.

Neither filter synchronizes internally. Concurrent Lookup calls over a
filter that no writer is mutating are safe; any writer requires
caller-supplied mutual exclusion around the whole operation, including the
counting filter's full check-and-commit sequence.
*/
package filters

// Filter is the read surface common to both filter kinds.
type Filter interface {
	// Lookup reports whether data might have been inserted. False is
	// always correct; true may be a false positive.
	Lookup(data []byte) bool

	// LookupString is Lookup over the raw bytes of data.
	LookupString(data string) bool

	// Clear removes every element.
	Clear()

	// GetSize returns the number of bit or counter slots.
	GetSize() uint

	// GetNumHashes returns the number of probe positions per element.
	GetNumHashes() uint

	// GetMemoryBytes returns the storage footprint in bytes.
	GetMemoryBytes() uint
}
