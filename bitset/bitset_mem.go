package bitset

import (
	"fmt"
	"unsafe"

	bbloom "github.com/bits-and-blooms/bitset"

	"github.com/probatix/probatix"
)

// BitSetMem is an IBitSet that owns its storage, backed by a
// bits-and-blooms bitset. The memory is released with the value.
type BitSetMem struct {
	set  *bbloom.BitSet
	size uint
}

// NewBitSetMem allocates a zeroed bitset of size bits.
func NewBitSetMem(size uint) *BitSetMem {
	return &BitSetMem{bbloom.New(size), size}
}

func (b *BitSetMem) Has(index uint) bool {
	return b.set.Test(index)
}

func (b *BitSetMem) Insert(index uint) {
	b.set.Set(index)
}

func (b *BitSetMem) Reset() {
	b.set.ClearAll()
}

func (b *BitSetMem) Size() uint {
	return b.size
}

func (b *BitSetMem) BitCount() uint {
	return b.set.Count()
}

// Bytes reinterprets the underlying word array as bytes, trimmed to
// ceil(size/8). The view assumes little-endian word layout, under which
// word storage and the LSB0 byte convention coincide. No copy is made.
func (b *BitSetMem) Bytes() []byte {
	words := b.set.Bytes()
	if len(words) == 0 {
		return nil
	}
	view := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
	return view[:probatix.MemoryBytes(b.size)]
}

func (b *BitSetMem) Equals(other IBitSet) (bool, error) {
	second, ok := other.(*BitSetMem)
	if !ok {
		return false, fmt.Errorf("invalid bitset type, should be *BitSetMem")
	}
	return b.size == second.size && b.set.Equal(second.set), nil
}
