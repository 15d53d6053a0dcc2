package ahuff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vector struct {
	input string
	bits  string
}

var testVectors = [...]vector{
	{input: "", bits: ""},
	{input: "A", bits: "01000001"},
	{input: "AB", bits: "01000001001000010"},
	{input: "ABC", bits: "010000010010000101001000011"},
	{input: "AAAAAAA", bits: "01000001111111"},
	{input: "ABABAB", bits: "0100000100100001000110"},
	{input: "HELLO", bits: "01001000001000101100100110011111001001111"},
	{input: "abracadabra", bits: "01100001001100010100111001001100110001101110011001000010000"},
	{input: "mississippi", bits: "011011010011010011001110011111100001000111000010101"},
}

func TestEncoder_Encode(t *testing.T) {
	for _, row := range testVectors {
		t.Run(row.input, func(t *testing.T) {
			e := NewEncoder()
			actual := e.EncodeString(row.input)
			if row.bits != actual.String() {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.bits, actual.String())
			}
			assert.Equal(t, len(row.input), e.SymbolsEncoded())
			assert.Equal(t, len(row.bits), e.BitsEmitted())
		})
	}
}

func TestEncoder_Deterministic(t *testing.T) {
	input := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog; ", 20))
	a := NewEncoder().Encode(input)
	b := NewEncoder().Encode(input)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestEncoder_SymbolAtATime(t *testing.T) {
	input := []byte("symbol at a time")
	whole := NewEncoder().Encode(input)

	var e Encoder
	e.Init()
	var joined Bits
	for _, ch := range input {
		joined.AppendBits(e.EncodeSymbol(Symbol(ch)))
	}
	assert.Equal(t, whole.String(), joined.String())
}

func TestEncoder_Reset(t *testing.T) {
	e := NewEncoder()
	first := e.EncodeString("HELLO")
	e.Reset()
	assert.Zero(t, e.SymbolsEncoded())
	assert.Zero(t, e.BitsEmitted())
	second := e.EncodeString("HELLO")
	assert.Equal(t, first.String(), second.String())
}

func TestEncoder_Logging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	e := NewEncoder()
	e.SetLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))
	e.EncodeString("ABA")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"symbol":65`)
	assert.Contains(t, lines[0], `"first":true`)
	assert.Contains(t, lines[2], `"first":false`)
	assert.Contains(t, lines[3], `"message":"encoded"`)
	assert.Contains(t, lines[3], `"bits":18`)
}

func TestEncoder_String(t *testing.T) {
	e := NewEncoder()
	e.EncodeString("AAAAAAA")
	assert.Equal(t, "(adaptive Huffman encoder, 7 symbols in 14 bits, 1 distinct)", e.String())
}
