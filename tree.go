package ahuff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is an adaptive Huffman code tree.  It owns every Node, tracks which
// leaf belongs to which Symbol, and rebalances itself after every symbol so
// that an encoder and a decoder fed the same symbols hold identical trees.
//
// A Tree starts out as a single NYT node that is also the root.  Use
// NewTree, or call Init on a zero Tree, before use.
type Tree struct {
	nodes       []Node
	byNumber    [MaxNumber + 1]NodeID
	bySymbol    [NumSymbols]NodeID
	root        NodeID
	nyt         NodeID
	lastTouched NodeID
	nextNumber  int
	numSymbols  int
}

// NewTree allocates and initializes a Tree.
func NewTree() *Tree {
	t := new(Tree)
	t.Init()
	return t
}

// Init initializes this Tree to the empty state: a lone NYT root.
func (t *Tree) Init() {
	if t.nodes == nil {
		t.nodes = make([]Node, 0, 1+3*NumSymbols)
	}
	t.nodes = t.nodes[:0]
	for i := range t.byNumber {
		t.byNumber[i] = NoNode
	}
	for i := range t.bySymbol {
		t.bySymbol[i] = NoNode
	}
	t.nextNumber = MaxNumber
	t.numSymbols = 0

	id := t.alloc(Node{IsNYT: true})
	t.root = id
	t.nyt = id
	t.lastTouched = id
}

// Reset discards every node and returns the Tree to the empty state.
// NodeIDs obtained before the Reset are invalidated.
func (t *Tree) Reset() {
	t.Init()
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// NYT returns the current NYT leaf.
func (t *Tree) NYT() NodeID {
	return t.nyt
}

// LastTouched returns the node most recently created or updated by
// EncodeSymbol or DecodeNext: the new leaf for a first occurrence, or the
// existing leaf for a repeat.
func (t *Tree) LastTouched() NodeID {
	return t.lastTouched
}

// Node returns a snapshot of the node with the given handle.
func (t *Tree) Node(id NodeID) Node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// Leaf returns the leaf for sym, if sym has been seen.
func (t *Tree) Leaf(sym Symbol) (NodeID, bool) {
	id := t.bySymbol[sym]
	return id, id != NoNode
}

// Symbols returns every Symbol seen so far, in ascending order.
func (t *Tree) Symbols() []Symbol {
	out := make([]Symbol, 0, t.numSymbols)
	for sym := 0; sym < NumSymbols; sym++ {
		if t.bySymbol[sym] != NoNode {
			out = append(out, Symbol(sym))
		}
	}
	return out
}

// NumSymbols returns the number of distinct Symbols seen so far.
func (t *Tree) NumSymbols() int {
	return t.numSymbols
}

// NumNodes returns the number of nodes reachable from the root.
func (t *Tree) NumNodes() int {
	return 2*t.numSymbols + 1
}

// Code returns the path from the root to the given node: 0 for each step
// to a left child, 1 for each step to a right child.  The root's code is
// empty.
func (t *Tree) Code(id NodeID) Bits {
	var b Bits
	t.appendCode(&b, id)
	return b
}

// EncodeSymbol returns the bits that encode sym given the symbols seen so
// far, then updates the tree to account for sym.
func (t *Tree) EncodeSymbol(sym Symbol) Bits {
	var b Bits
	t.AppendSymbol(&b, sym)
	return b
}

// AppendSymbol is like EncodeSymbol, but appends the bits to dst.
func (t *Tree) AppendSymbol(dst *Bits, sym Symbol) {
	if id := t.bySymbol[sym]; id != NoNode {
		t.appendCode(dst, id)
		t.update(id)
		t.lastTouched = id
		return
	}

	t.appendCode(dst, t.nyt)
	dst.AppendUint(uint64(sym), SymbolBits)
	t.lastTouched = t.insert(sym)
}

// DecodeNext decodes one symbol from src, starting at bit offset pos, and
// updates the tree to account for it.  It returns the symbol and the number
// of bits consumed.
//
// If src ends before a complete code is read, DecodeNext returns an
// *IncompleteStreamError and leaves the tree unchanged.
//
func (t *Tree) DecodeNext(src Bits, pos int) (Symbol, int, error) {
	assert.Assertf(pos >= 0 && pos <= src.Len(), "pos %d out of range [0, %d]", pos, src.Len())

	start := pos
	id := t.root
	for !t.nodes[id].IsLeaf() {
		if pos >= src.Len() {
			return 0, 0, &IncompleteStreamError{Offset: start, Have: src.Len() - start}
		}
		if src.At(pos) == 0 {
			id = t.nodes[id].Left
		} else {
			id = t.nodes[id].Right
		}
		pos++
	}

	if !t.nodes[id].IsNYT {
		sym := t.nodes[id].Symbol
		t.update(id)
		t.lastTouched = id
		return sym, pos - start, nil
	}

	if have := src.Len() - pos; have < SymbolBits {
		return 0, 0, &IncompleteStreamError{Offset: pos, Need: SymbolBits, Have: have}
	}
	sym := Symbol(src.Uint(pos, SymbolBits))
	pos += SymbolBits
	t.lastTouched = t.insert(sym)
	return sym, pos - start, nil
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.  Live nodes are listed by descending number.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = #%d\n", t.nodes[t.root].Number)
	fmt.Fprintf(&buf, "\tNYT() = #%d\n", t.nodes[t.nyt].Number)
	for number := MaxNumber; number >= 0; number-- {
		id := t.byNumber[number]
		if id == NoNode {
			continue
		}
		n := t.nodes[id]
		switch {
		case n.IsNYT:
			fmt.Fprintf(&buf, "\t#%d NYT", number)
		case n.IsLeaf():
			fmt.Fprintf(&buf, "\t#%d leaf %d", number, n.Symbol)
		default:
			fmt.Fprintf(&buf, "\t#%d internal", number)
		}
		fmt.Fprintf(&buf, " count=%d code=%q\n", n.Count, t.Code(id).String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(adaptive Huffman tree with %d symbols, %d nodes)", t.numSymbols, t.NumNodes())
}

var _ fmt.Stringer = (*Tree)(nil)

// alloc appends a node, giving it the next free number.
func (t *Tree) alloc(n Node) NodeID {
	assert.Assertf(t.nextNumber >= 0, "node numbers exhausted")
	n.Number = t.nextNumber
	n.Left = NoNode
	n.Right = NoNode
	n.Parent = NoNode
	t.nextNumber--

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.byNumber[n.Number] = id
	return id
}

// insert grows the tree for a symbol seen for the first time, and returns
// the new leaf.
//
// The old NYT is replaced in place by a new internal node whose children
// are a fresh NYT (left) and the symbol's leaf (right).  Both leaves start
// with their final counts, so only the internal node and its ancestors are
// passed through update.
//
func (t *Tree) insert(sym Symbol) NodeID {
	assert.Assertf(t.bySymbol[sym] == NoNode, "symbol %d inserted twice", sym)

	oldNYT := t.nyt
	nyt := t.alloc(Node{IsNYT: true})
	leaf := t.alloc(Node{Symbol: sym, Count: 1})
	internal := t.alloc(Node{Count: 1})

	t.nodes[internal].Left = nyt
	t.nodes[internal].Right = leaf
	t.nodes[nyt].Parent = internal
	t.nodes[leaf].Parent = internal

	if parent := t.nodes[oldNYT].Parent; parent == NoNode {
		t.root = internal
	} else {
		t.replaceChild(parent, oldNYT, internal)
		t.nodes[internal].Parent = parent
	}

	// The old NYT is unreachable from now on.  Its count is 0 and update
	// never visits a node of count 0, so dropping it from the number index
	// cannot change which swap candidates are found.
	old := &t.nodes[oldNYT]
	t.byNumber[old.Number] = NoNode
	old.IsNYT = false
	old.Parent = NoNode

	t.nyt = nyt
	t.bySymbol[sym] = leaf
	t.numSymbols++

	t.update(internal)
	return leaf
}

// update walks from id to the root.  At each step it swaps the node with
// the highest-numbered node of equal count, if that is neither the node
// itself nor its parent or child, and then increments the node's count.
func (t *Tree) update(id NodeID) {
	for id != NoNode {
		node := &t.nodes[id]
		cand := t.swapCandidate(id)
		if cand != NoNode && cand != id && cand != node.Parent && t.nodes[cand].Parent != id {
			t.swap(id, cand)
		}
		node.Count++
		id = node.Parent
	}
}

// swapCandidate scans numbers from MaxNumber down to, but not including,
// the node's own number and returns the first node with the same count.
func (t *Tree) swapCandidate(id NodeID) NodeID {
	node := &t.nodes[id]
	for number := MaxNumber; number > node.Number; number-- {
		cand := t.byNumber[number]
		if cand != NoNode && t.nodes[cand].Count == node.Count {
			return cand
		}
	}
	return NoNode
}

// swap exchanges the tree positions and numbers of a and b.  Subtrees,
// symbols, and counts stay with their nodes.
func (t *Tree) swap(a NodeID, b NodeID) {
	na := &t.nodes[a]
	nb := &t.nodes[b]
	pa := na.Parent
	pb := nb.Parent
	assert.Assertf(a != b, "swap of node %d with itself", a)
	assert.Assertf(pa != NoNode && pb != NoNode, "swap of the root (nodes %d and %d)", a, b)
	assert.Assertf(pa != b && pb != a, "swap of parent and child (nodes %d and %d)", a, b)

	if pa == pb {
		p := &t.nodes[pa]
		p.Left, p.Right = p.Right, p.Left
	} else {
		t.replaceChild(pa, a, b)
		t.replaceChild(pb, b, a)
		na.Parent = pb
		nb.Parent = pa
	}

	na.Number, nb.Number = nb.Number, na.Number
	t.byNumber[na.Number] = a
	t.byNumber[nb.Number] = b
}

func (t *Tree) replaceChild(parent NodeID, oldChild NodeID, newChild NodeID) {
	p := &t.nodes[parent]
	switch oldChild {
	case p.Left:
		p.Left = newChild
	case p.Right:
		p.Right = newChild
	default:
		assert.Assertf(false, "node %d is not a child of node %d", oldChild, parent)
	}
}

func (t *Tree) appendCode(dst *Bits, id NodeID) {
	var path [NumSymbols + 1]byte
	depth := 0
	for child := id; ; {
		parent := t.nodes[child].Parent
		if parent == NoNode {
			break
		}
		if t.nodes[parent].Left == child {
			path[depth] = 0
		} else {
			path[depth] = 1
		}
		depth++
		child = parent
	}
	for depth > 0 {
		depth--
		dst.AppendBit(uint(path[depth]))
	}
}
