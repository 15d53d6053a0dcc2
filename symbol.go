package ahuff

// Symbol represents one symbol of the coding alphabet, which is the set of
// all 8-bit bytes.
type Symbol byte

const (
	// NumSymbols is the size of the coding alphabet.
	NumSymbols = 256

	// SymbolBits is the width of the raw symbol payload that follows the
	// NYT escape code on a first occurrence.
	SymbolBits = 8

	// MaxNumber is the node number given to the very first node of a
	// Tree.  Each insertion consumes three fresh numbers, counting down, so
	// a Tree that has seen every symbol has used numbers 0 .. MaxNumber.
	MaxNumber = 3 * NumSymbols
)
