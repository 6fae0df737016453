package bitset

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/probatix/probatix"
)

// BitSetBuf is an IBitSet over a caller-supplied byte buffer. The caller
// retains ownership of the memory and must keep it alive for as long as the
// bitset is in use; the bitset has exclusive write access for that span.
// Bit j lives at byte j/8, bit j%8 (LSB0).
type BitSetBuf struct {
	buf  []byte
	size uint
}

// NewBitSetBuf binds size bits to buf. The buffer must hold at least
// ceil(size/8) bytes or ErrBufferTooSmall is returned; a longer buffer is
// truncated to the required length. The bound region is zeroed.
func NewBitSetBuf(size uint, buf []byte) (*BitSetBuf, error) {
	need := probatix.MemoryBytes(size)
	if uint(len(buf)) < need {
		return nil, fmt.Errorf("%w: %d bits need %d bytes, buffer holds %d", probatix.ErrBufferTooSmall, size, need, len(buf))
	}
	buf = buf[:need]
	for i := range buf {
		buf[i] = 0
	}
	return &BitSetBuf{buf, size}, nil
}

func (b *BitSetBuf) Has(index uint) bool {
	return b.buf[index>>3]&(1<<(index&7)) != 0
}

func (b *BitSetBuf) Insert(index uint) {
	b.buf[index>>3] |= 1 << (index & 7)
}

func (b *BitSetBuf) Reset() {
	for i := range b.buf {
		b.buf[i] = 0
	}
}

func (b *BitSetBuf) Size() uint {
	return b.size
}

func (b *BitSetBuf) BitCount() uint {
	var count uint
	for _, v := range b.buf {
		count += uint(bits.OnesCount8(v))
	}
	return count
}

// Bytes returns the bound region of the caller's buffer without copying.
func (b *BitSetBuf) Bytes() []byte {
	return b.buf
}

func (b *BitSetBuf) Equals(other IBitSet) (bool, error) {
	second, ok := other.(*BitSetBuf)
	if !ok {
		return false, fmt.Errorf("invalid bitset type, should be *BitSetBuf")
	}
	return b.size == second.size && bytes.Equal(b.buf, second.buf), nil
}
