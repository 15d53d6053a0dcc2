// Package frame wraps an adaptive Huffman bit stream in a self-delimiting
// container, since the bare stream has no length or end marker.
//
// A frame is the 4-byte magic "AHF1", the number of payload bits as an
// unsigned varint, and the payload bits packed most significant bit first,
// with the last byte zero-padded.
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/chronos-tachyon/ahuff"
)

// Magic identifies a frame.
const Magic = "AHF1"

// ErrBadMagic is returned by Read when the input does not start with Magic.
var ErrBadMagic = errors.New("frame: bad magic")

// Write writes b to w as a single frame.
func Write(w io.Writer, b ahuff.Bits) error {
	bw := bitio.NewWriter(w)

	var header [len(Magic) + binary.MaxVarintLen64]byte
	n := copy(header[:], Magic)
	n += binary.PutUvarint(header[n:], uint64(b.Len()))
	if _, err := bw.Write(header[:n]); err != nil {
		return fmt.Errorf("frame: writing header: %w", err)
	}

	for i := 0; i < b.Len(); {
		width := min(64, b.Len()-i)
		if err := bw.WriteBits(b.Uint(i, width), uint8(width)); err != nil {
			return fmt.Errorf("frame: writing payload: %w", err)
		}
		i += width
	}

	if err := bw.Close(); err != nil {
		return fmt.Errorf("frame: flushing payload: %w", err)
	}
	return nil
}

// Read reads a single frame from r.  Read may consume bytes of r beyond the
// end of the frame.
func Read(r io.Reader) (ahuff.Bits, error) {
	br := bitio.NewReader(r)

	var magic [len(Magic)]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return ahuff.Bits{}, fmt.Errorf("frame: reading magic: %w", unexpected(err))
	}
	if string(magic[:]) != Magic {
		return ahuff.Bits{}, fmt.Errorf("%w: got %q", ErrBadMagic, magic[:])
	}

	size, err := binary.ReadUvarint(br)
	if err != nil {
		return ahuff.Bits{}, fmt.Errorf("frame: reading length: %w", unexpected(err))
	}

	var b ahuff.Bits
	for remaining := size; remaining > 0; {
		width := min(64, remaining)
		v, err := br.ReadBits(uint8(width))
		if err != nil {
			return ahuff.Bits{}, fmt.Errorf("frame: reading %d-bit payload: %w", size, unexpected(err))
		}
		b.AppendUint(v, int(width))
		remaining -= width
	}
	return b, nil
}

// Encode adaptive-codes msg with a fresh Encoder and returns it as a frame.
func Encode(msg []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, ahuff.NewEncoder().Encode(msg)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one frame from data and decodes it with a fresh Decoder.
func Decode(data []byte) ([]byte, error) {
	b, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ahuff.NewDecoder().Decode(b)
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
