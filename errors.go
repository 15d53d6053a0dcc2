package ahuff

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteStream is matched (via errors.Is) by every error that
	// reports a bit stream ending in the middle of a code.
	ErrIncompleteStream = errors.New("incomplete adaptive Huffman stream")

	// ErrInvalidBit is returned by ParseBits for characters other than
	// '0', '1', and whitespace.
	ErrInvalidBit = errors.New("invalid bit character")
)

// IncompleteStreamError describes where a bit stream ran out.
type IncompleteStreamError struct {
	// Offset is the bit position at which the partial code began.
	Offset int

	// Need is the number of bits required to finish the code, if known.
	// It is 0 when the stream ended while walking the tree, since the
	// remaining depth is not known.
	Need int

	// Have is the number of bits that were available from Offset onward.
	Have int
}

// Error fulfills the error interface.
func (err *IncompleteStreamError) Error() string {
	if err.Need == 0 {
		return fmt.Sprintf("%v: stream ends inside a tree code at bit %d (%d bits available)", ErrIncompleteStream, err.Offset, err.Have)
	}
	return fmt.Sprintf("%v: symbol payload at bit %d needs %d bits, only %d remain", ErrIncompleteStream, err.Offset, err.Need, err.Have)
}

// Unwrap returns ErrIncompleteStream.
func (err *IncompleteStreamError) Unwrap() error {
	return ErrIncompleteStream
}

var _ error = (*IncompleteStreamError)(nil)
