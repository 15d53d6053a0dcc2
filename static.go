package ahuff

import (
	"container/heap"
	"fmt"
	"math"
)

// StaticCodeLengths computes the bit length of each symbol's code in an
// optimal static Huffman code for the given frequencies.  Symbols with a
// frequency of 0 get a length of 0.  When fewer than three symbols are
// present, each present symbol gets a length of 1.
//
// This is the two-pass code that an adaptive code tries to approach without
// knowing the frequencies in advance.
//
func StaticCodeLengths(freqs []uint32) []byte {
	sizes := make([]byte, len(freqs))

	h := freqHeap{list: make([]symbolAndFreq, 0, len(freqs))}
	for symbol, freq := range freqs {
		if freq != 0 {
			h.list = append(h.list, symbolAndFreq{int32(symbol), freq})
		}
	}
	if len(h.list) <= 2 {
		for _, item := range h.list {
			sizes[item.symbol] = 1
		}
		return sizes
	}

	// Merge the two lightest nodes until one remains.  Merged nodes get
	// negative "synthetic" symbols, starting at math.MinInt32, so that
	// they sort after every natural symbol of equal frequency.

	type syntheticSymbol struct {
		left  int32
		right int32
	}

	h.Init()
	synthetic := make([]syntheticSymbol, 0, len(h.list)-1)
	for h.Len() > 1 {
		a := heap.Pop(&h).(symbolAndFreq)
		b := heap.Pop(&h).(symbolAndFreq)

		// saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint32
		}

		synthetic = append(synthetic, syntheticSymbol{a.symbol, b.symbol})
		heap.Push(&h, symbolAndFreq{math.MinInt32 + int32(len(synthetic)-1), freqSum})
	}

	// The depth of each natural symbol in the merge tree is its length.

	type stackItem struct {
		symbol int32
		depth  byte
	}

	stack := []stackItem{{h.list[0].symbol, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.symbol >= 0 {
			sizes[top.symbol] = top.depth
			continue
		}
		s := synthetic[top.symbol-math.MinInt32]
		stack = append(stack, stackItem{s.left, top.depth + 1}, stackItem{s.right, top.depth + 1})
	}
	return sizes
}

// Stats compares the adaptive code of a message with the static code for
// the same message.
type Stats struct {
	// Symbols is the length of the message.
	Symbols int

	// Distinct is the number of distinct symbols in the message.
	Distinct int

	// AdaptiveBits is the length of the adaptive encoding.
	AdaptiveBits int

	// EscapeBits is the part of AdaptiveBits spent on raw symbol payloads
	// after NYT codes.
	EscapeBits int

	// StaticBits is the length of the message under the optimal static
	// code, not counting any table needed to transmit that code.
	StaticBits int
}

// Analyze encodes input with a fresh Encoder and computes its Stats.
func Analyze(input []byte) Stats {
	e := NewEncoder()
	adaptive := e.Encode(input)

	var freqs [NumSymbols]uint32
	for _, ch := range input {
		freqs[ch]++
	}
	sizes := StaticCodeLengths(freqs[:])

	var static int
	for symbol, freq := range freqs {
		static += int(freq) * int(sizes[symbol])
	}

	distinct := e.Tree().NumSymbols()
	return Stats{
		Symbols:      len(input),
		Distinct:     distinct,
		AdaptiveBits: adaptive.Len(),
		EscapeBits:   SymbolBits * distinct,
		StaticBits:   static,
	}
}

// BitsPerSymbol returns the average adaptive code length.
func (s Stats) BitsPerSymbol() float64 {
	if s.Symbols == 0 {
		return 0
	}
	return float64(s.AdaptiveBits) / float64(s.Symbols)
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d symbols (%d distinct): adaptive %d bits (%.3f bits/symbol, %d escape), static %d bits",
		s.Symbols, s.Distinct, s.AdaptiveBits, s.BitsPerSymbol(), s.EscapeBits, s.StaticBits)
}

var _ fmt.Stringer = Stats{}

// type symbolAndFreq + type freqHeap {{{

type symbolAndFreq struct {
	symbol int32
	freq   uint32
}

type freqHeap struct {
	list []symbolAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return uint32(a.symbol) < uint32(b.symbol)
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(symbolAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
