package hash

import "github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"

// RateNibbles is the multi-rate padding block size (spec §4.3).
const RateNibbles = 32

// Pad implements the 10*1 multi-rate padding of spec §4.3: append 0x8, then
// the minimum run of 0x0 nibbles so the length becomes congruent to
// RateNibbles-1 modulo RateNibbles, then append 0x1. The result is always a
// positive multiple of RateNibbles; the empty input pads to exactly
// RateNibbles nibbles: 8, 0, ..., 0, 1.
func Pad(nibbles []nibble.Nibble) []nibble.Nibble {
	padded := make([]nibble.Nibble, len(nibbles), len(nibbles)+RateNibbles)
	copy(padded, nibbles)

	padded = append(padded, 0x8)
	for len(padded)%RateNibbles != RateNibbles-1 {
		padded = append(padded, 0x0)
	}
	padded = append(padded, 0x1)

	return padded
}

// BytesToNibbles converts a byte sequence into its nibble form, high nibble
// first for each byte (spec §3).
func BytesToNibbles(msg []byte) []nibble.Nibble {
	out := make([]nibble.Nibble, 0, len(msg)*2)
	for _, b := range msg {
		hi, lo := nibble.UnpackByte(b)
		out = append(out, hi, lo)
	}
	return out
}
