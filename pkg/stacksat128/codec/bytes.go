// Package codec provides the external-boundary adapters of spec §4.8: byte
// <-> nibble conversion, digest <-> hex conversion, and a compact on-wire
// form for stackvm.Script, for callers that cross a process or network
// boundary rather than use the Go types directly.
package codec

import "github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"

// BytesToNibbles converts a byte sequence into its nibble form, high nibble
// first for each byte (spec §3). It returns the same nibbles as
// hash.BytesToNibbles, for callers that only depend on codec, not hash.
func BytesToNibbles(msg []byte) []nibble.Nibble {
	out := make([]nibble.Nibble, 0, len(msg)*2)
	for _, b := range msg {
		hi, lo := nibble.UnpackByte(b)
		out = append(out, hi, lo)
	}
	return out
}

// NibblesToBytes packs an even-length nibble sequence back into bytes,
// high nibble first. It returns an error if the sequence has odd length or
// any nibble is out of range.
func NibblesToBytes(nibbles []nibble.Nibble) ([]byte, error) {
	if len(nibbles)%2 != 0 {
		return nil, Error{Kind: ErrOddNibbleCount, Message: "nibble sequence has odd length"}
	}
	out := make([]byte, len(nibbles)/2)
	for i := range out {
		hi, lo := nibbles[2*i], nibbles[2*i+1]
		if hi > 0xF || lo > 0xF {
			return nil, Error{Kind: ErrNibbleOutOfRange, Message: "nibble value exceeds 0xF"}
		}
		out[i] = nibble.PackByte(hi, lo)
	}
	return out, nil
}
