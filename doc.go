// Package ahuff implements one-pass adaptive Huffman codes in the style of
// Faller, Gallager and Knuth.  Encoder and Decoder each grow their own code
// tree from the symbols seen so far, so no frequency table is transmitted:
// the first occurrence of a byte is sent as the current NYT ("not yet
// transmitted") escape code followed by the byte's 8 raw bits, and every
// later occurrence is sent as the path from the root to that byte's leaf.
//
// The wire format is a bare sequence of bits with no header or end marker.
// Callers that need a self-delimiting stream must add their own framing;
// see the frame subpackage for one such container.
//
// A Tree, Encoder, or Decoder must not be used from more than one goroutine
// at a time.
//
// References:
//
//     Knuth, "Dynamic Huffman Coding", J. Algorithms 6 (1985), 163-180
//
//     <https://en.wikipedia.org/wiki/Adaptive_Huffman_coding>
//
package ahuff
