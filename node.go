package ahuff

import (
	"fmt"
)

// NodeID is a handle to a Node owned by a Tree.  Handles stay valid until
// the Tree is reset.
type NodeID int32

// NoNode is the NodeID of a missing child or parent.
const NoNode = NodeID(-1)

// Node is a single vertex of an adaptive Huffman tree: a symbol leaf, an
// internal branching node, or the NYT leaf.
//
// Tree.Node returns Nodes by value, so a Node obtained from a Tree is a
// snapshot and modifying it has no effect on the Tree.
type Node struct {
	// Symbol is the symbol carried by a symbol leaf.  It is meaningless for
	// internal nodes and for the NYT node.
	Symbol Symbol

	// Count is the weight of the node.
	Count uint32

	// Number is the node's current rank.  Numbers are unique within a
	// Tree, are handed out counting down from MaxNumber, and move between
	// nodes when nodes swap positions.
	Number int

	// IsNYT is true for the single "not yet transmitted" leaf.
	IsNYT bool

	Left   NodeID
	Right  NodeID
	Parent NodeID
}

// IsLeaf returns true iff the node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// String returns a programmer-readable description of the node.
func (n Node) String() string {
	switch {
	case n.IsNYT:
		return fmt.Sprintf("[NYT #%d count=%d]", n.Number, n.Count)
	case n.IsLeaf():
		return fmt.Sprintf("[%q #%d count=%d]", rune(n.Symbol), n.Number, n.Count)
	default:
		return fmt.Sprintf("[internal #%d count=%d]", n.Number, n.Count)
	}
}

var _ fmt.Stringer = Node{}
