package ahuff

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Decoder implements a decoder for adaptive Huffman codes.  It owns one
// Tree, which evolves in lockstep with the Tree of the Encoder that
// produced the stream.
type Decoder struct {
	tree    *Tree
	log     zerolog.Logger
	symbols int
	bits    int
}

// NewDecoder allocates and initializes a Decoder.
func NewDecoder() *Decoder {
	d := new(Decoder)
	d.Init()
	return d
}

// Init initializes this Decoder with a fresh Tree and a no-op logger.
func (d *Decoder) Init() {
	*d = Decoder{
		tree: NewTree(),
		log:  zerolog.Nop(),
	}
}

// Reset starts a new coding session.  The logger is kept.
func (d *Decoder) Reset() {
	d.tree.Reset()
	d.symbols = 0
	d.bits = 0
}

// SetLogger attaches a logger.  Each symbol is logged at trace level, each
// call to Decode at debug level, and incomplete streams at warn level.
func (d *Decoder) SetLogger(logger zerolog.Logger) {
	d.log = logger
}

// Tree returns the Decoder's code tree for inspection.  Callers must not
// encode or decode through it directly.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// DecodeNext decodes one Symbol from src starting at bit offset pos.  It
// returns the Symbol and the number of bits consumed.  See Tree.DecodeNext.
func (d *Decoder) DecodeNext(src Bits, pos int) (Symbol, int, error) {
	sym, n, err := d.tree.DecodeNext(src, pos)
	if err != nil {
		d.log.Warn().Err(err).Int("offset", pos).Msg("incomplete stream")
		return sym, n, err
	}
	d.symbols++
	d.bits += n

	d.log.Trace().
		Uint8("symbol", uint8(sym)).
		Int("offset", pos).
		Int("size", n).
		Msg("decode symbol")
	return sym, n, nil
}

// Decode decodes every Symbol in src.
//
// If src ends in the middle of a code, Decode returns the symbols decoded
// before that point together with an error matching ErrIncompleteStream.
// Such a prefix is never the complete message.
//
func (d *Decoder) Decode(src Bits) ([]byte, error) {
	out := make([]byte, 0, src.Len()/2)
	pos := 0
	for pos < src.Len() {
		sym, n, err := d.DecodeNext(src, pos)
		if err != nil {
			return out, err
		}
		out = append(out, byte(sym))
		pos += n
	}
	d.log.Debug().
		Int("symbols", len(out)).
		Int("bits", src.Len()).
		Int("distinct", d.tree.NumSymbols()).
		Msg("decoded")
	return out, nil
}

// DecodeString is like Decode, but takes the bits as a string of '0' and
// '1' characters.  Whitespace in str is ignored.
func (d *Decoder) DecodeString(str string) ([]byte, error) {
	src, err := ParseBits(str)
	if err != nil {
		return nil, err
	}
	return d.Decode(src)
}

// SymbolsDecoded returns the number of symbols decoded since the last Init
// or Reset.
func (d *Decoder) SymbolsDecoded() int {
	return d.symbols
}

// BitsConsumed returns the number of bits consumed since the last Init or
// Reset.
func (d *Decoder) BitsConsumed() int {
	return d.bits
}

// String returns a brief description of this Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(adaptive Huffman decoder, %d symbols from %d bits, %d distinct)", d.symbols, d.bits, d.tree.NumSymbols())
}

var _ fmt.Stringer = (*Decoder)(nil)
