package ahuff

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Encoder implements an encoder for adaptive Huffman codes.  It owns one
// Tree, which evolves as symbols are encoded.
type Encoder struct {
	tree    *Tree
	log     zerolog.Logger
	symbols int
	bits    int
}

// NewEncoder allocates and initializes an Encoder.
func NewEncoder() *Encoder {
	e := new(Encoder)
	e.Init()
	return e
}

// Init initializes this Encoder with a fresh Tree and a no-op logger.
func (e *Encoder) Init() {
	*e = Encoder{
		tree: NewTree(),
		log:  zerolog.Nop(),
	}
}

// Reset starts a new coding session.  The logger is kept.
func (e *Encoder) Reset() {
	e.tree.Reset()
	e.symbols = 0
	e.bits = 0
}

// SetLogger attaches a logger.  Each symbol is logged at trace level and
// each call to Encode at debug level.
func (e *Encoder) SetLogger(logger zerolog.Logger) {
	e.log = logger
}

// Tree returns the Encoder's code tree for inspection.  Callers must not
// encode or decode through it directly.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// EncodeSymbol encodes a single Symbol.
func (e *Encoder) EncodeSymbol(sym Symbol) Bits {
	var b Bits
	e.appendSymbol(&b, sym)
	return b
}

// Encode encodes every byte of input, in order, and returns the
// concatenated bits.
func (e *Encoder) Encode(input []byte) Bits {
	var b Bits
	for _, ch := range input {
		e.appendSymbol(&b, Symbol(ch))
	}
	e.log.Debug().
		Int("symbols", len(input)).
		Int("bits", b.Len()).
		Int("distinct", e.tree.NumSymbols()).
		Msg("encoded")
	return b
}

// EncodeString is like Encode, but takes its input as a string.
func (e *Encoder) EncodeString(input string) Bits {
	return e.Encode([]byte(input))
}

// SymbolsEncoded returns the number of symbols encoded since the last
// Init or Reset.
func (e *Encoder) SymbolsEncoded() int {
	return e.symbols
}

// BitsEmitted returns the number of bits emitted since the last Init or
// Reset.
func (e *Encoder) BitsEmitted() int {
	return e.bits
}

// String returns a brief description of this Encoder.
func (e *Encoder) String() string {
	return fmt.Sprintf("(adaptive Huffman encoder, %d symbols in %d bits, %d distinct)", e.symbols, e.bits, e.tree.NumSymbols())
}

var _ fmt.Stringer = (*Encoder)(nil)

func (e *Encoder) appendSymbol(dst *Bits, sym Symbol) {
	_, seen := e.tree.Leaf(sym)
	before := dst.Len()
	e.tree.AppendSymbol(dst, sym)
	size := dst.Len() - before
	e.symbols++
	e.bits += size

	e.log.Trace().
		Uint8("symbol", uint8(sym)).
		Bool("first", !seen).
		Int("size", size).
		Int("node", e.tree.Node(e.tree.LastTouched()).Number).
		Msg("encode symbol")
}
