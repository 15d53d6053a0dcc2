package ahuff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBits(t *testing.T) {
	type testRow struct {
		input  string
		expect string
		size   int
	}

	testData := [...]testRow{
		{input: "", expect: "", size: 0},
		{input: " \t\n", expect: "", size: 0},
		{input: "0", expect: "0", size: 1},
		{input: "0100 0001", expect: "01000001", size: 8},
		{input: "1\n0\r\n1", expect: "101", size: 3},
		{input: "111111111", expect: "111111111", size: 9},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			b, err := ParseBits(row.input)
			require.NoError(t, err)
			assert.Equal(t, row.size, b.Len())
			assert.Equal(t, row.expect, b.String())
		})
	}
}

func TestParseBits_Invalid(t *testing.T) {
	_, err := ParseBits("01x1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBit)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestBits_Append(t *testing.T) {
	var b Bits
	b.AppendBit(1)
	b.AppendUint(0x41, SymbolBits)
	assert.Equal(t, "101000001", b.String())
	assert.Equal(t, []byte{0xa0, 0x80}, b.Bytes())

	b.AppendBits(MustParseBits("0110"))
	assert.Equal(t, "1010000010110", b.String())

	var aligned Bits
	aligned.AppendUint(0xff, 8)
	aligned.AppendBits(MustParseBits("101"))
	assert.Equal(t, "11111111101", aligned.String())
	assert.Equal(t, []byte{0xff, 0xa0}, aligned.Bytes())
	aligned.AppendBit(1)
	assert.Equal(t, "111111111011", aligned.String())
}

func TestBits_AppendZeroOverwrites(t *testing.T) {
	b := MustParseBits("1111")
	trimmed := b.Slice(0, 2)
	trimmed.AppendBit(0)
	assert.Equal(t, "110", trimmed.String())
	assert.Equal(t, "1111", b.String())
}

func TestMakeBits(t *testing.T) {
	b := MakeBits([]byte{0xff, 0xff}, 11)
	assert.Equal(t, 11, b.Len())
	assert.Equal(t, "11111111111", b.String())
	assert.Equal(t, []byte{0xff, 0xe0}, b.Bytes())

	assert.Panics(t, func() { MakeBits([]byte{0}, 9) })
}

func TestBits_UintAndSlice(t *testing.T) {
	b := MustParseBits("0010000101")
	assert.Equal(t, uint64(0x42), b.Uint(1, 8))
	assert.Equal(t, uint(1), b.At(9))
	assert.Equal(t, "100001", b.Slice(2, 8).String())
	assert.Equal(t, "", b.Slice(4, 4).String())
	assert.Panics(t, func() { b.At(10) })
}

func TestBits_Equal(t *testing.T) {
	a := MustParseBits("1010 1")
	b := MakeBits([]byte{0xaf}, 5)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustParseBits("10101 0")))
	assert.False(t, a.Equal(MustParseBits("10100")))
	assert.True(t, Bits{}.Equal(MustParseBits("")))
}

func TestBits_GoString(t *testing.T) {
	assert.Equal(t, `ahuff.MustParseBits("011")`, MustParseBits("011").GoString())
}
