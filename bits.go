package ahuff

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
)

// Bits represents a sequence of bits.  The zero value is the empty sequence.
//
// Like a slice, a copy of a Bits value shares storage with the original.
// Appending to more than one of the copies is not supported.
//
// Bits are packed most significant bit first: bit 0 of the sequence is the
// 0x80 bit of the first byte.  Unused trailing bits of the last byte are
// always zero.
type Bits struct {
	data []byte
	size int
}

// MakeBits constructs a Bits holding the first size bits of data.  The
// slice is copied.
func MakeBits(data []byte, size int) Bits {
	if size < 0 || size > 8*len(data) {
		panic(fmt.Errorf("MakeBits: size %d out of range for %d bytes", size, len(data)))
	}
	var b Bits
	b.size = size
	b.data = make([]byte, (size+7)/8)
	copy(b.data, data)
	b.clearTail()
	return b
}

// ParseBits parses a string of '0' and '1' characters.  Whitespace is
// ignored, so an empty or whitespace-only string yields the empty sequence.
func ParseBits(str string) (Bits, error) {
	var b Bits
	for index, ch := range str {
		switch {
		case ch == '0':
			b.AppendBit(0)
		case ch == '1':
			b.AppendBit(1)
		case unicode.IsSpace(ch):
			// pass
		default:
			return Bits{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, ch, index)
		}
	}
	return b, nil
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.size
}

// At returns bit i, which is either 0 or 1.
func (b Bits) At(i int) uint {
	if i < 0 || i >= b.size {
		panic(fmt.Errorf("Bits.At: index %d out of range [0, %d)", i, b.size))
	}
	return uint(b.data[i>>3]>>(7-uint(i&7))) & 1
}

// AppendBit appends a single bit.  Any non-zero bit counts as 1.
func (b *Bits) AppendBit(bit uint) {
	if b.size&7 == 0 {
		b.data = append(b.data, 0)
	}
	mask := byte(0x80) >> uint(b.size&7)
	if bit != 0 {
		b.data[b.size>>3] |= mask
	} else {
		b.data[b.size>>3] &^= mask
	}
	b.size++
}

// AppendUint appends the low width bits of value, most significant first.
func (b *Bits) AppendUint(value uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		b.AppendBit(uint(value>>uint(i)) & 1)
	}
}

// AppendBits appends every bit of other.
func (b *Bits) AppendBits(other Bits) {
	if b.size&7 == 0 {
		b.data = append(b.data[:b.size>>3], other.data...)
		b.size += other.size
		return
	}
	for i := 0; i < other.size; i++ {
		b.AppendBit(other.At(i))
	}
}

// Uint interprets the width bits starting at offset as an unsigned integer,
// most significant bit first.
func (b Bits) Uint(offset int, width int) uint64 {
	var value uint64
	for i := 0; i < width; i++ {
		value = (value << 1) | uint64(b.At(offset+i))
	}
	return value
}

// Slice returns a copy of bits [start, end).
func (b Bits) Slice(start int, end int) Bits {
	if start < 0 || end < start || end > b.size {
		panic(fmt.Errorf("Bits.Slice: range [%d, %d) out of range [0, %d)", start, end, b.size))
	}
	var out Bits
	for i := start; i < end; i++ {
		out.AppendBit(b.At(i))
	}
	return out
}

// Bytes returns the packed form of the sequence, zero-padded to a whole
// number of bytes.  The returned slice must not be modified.
func (b Bits) Bytes() []byte {
	return b.data[:(b.size+7)/8]
}

// Equal reports whether a and b hold the same bits.
func (b Bits) Equal(other Bits) bool {
	if b.size != other.size {
		return false
	}
	full := b.size >> 3
	if !bytes.Equal(b.data[:full], other.data[:full]) {
		return false
	}
	if rem := b.size & 7; rem != 0 {
		mask := ^(byte(0xff) >> uint(rem))
		return b.data[full]&mask == other.data[full]&mask
	}
	return true
}

// String returns the sequence as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		sb.WriteByte('0' + byte(b.At(i)))
	}
	return sb.String()
}

// GoString returns a Go expression that reconstructs this sequence.
func (b Bits) GoString() string {
	return fmt.Sprintf("ahuff.MustParseBits(%q)", b.String())
}

// MustParseBits is like ParseBits but panics on error.
func MustParseBits(str string) Bits {
	b, err := ParseBits(str)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Bits) clearTail() {
	if rem := b.size & 7; rem != 0 {
		b.data[len(b.data)-1] &^= 0xff >> uint(rem)
	}
}

var (
	_ fmt.Stringer   = Bits{}
	_ fmt.GoStringer = Bits{}
)
