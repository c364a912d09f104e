package hash

// Hash computes the STACKSAT-128 digest of msg: bytes are packed to
// nibbles, padded per spec §4.3, absorbed block-by-block (each absorption
// interleaved with the full 16-round permutation), and the final 64-nibble
// state is read out as a 32-byte digest (spec §4.5, §6.1).
//
// Hash is a pure function: it has no failure modes for any finite input and
// two calls on the same bytes always return identical digests.
func Hash(msg []byte) Digest {
	sponge := NewStackSatSponge()
	sponge.PadAndAbsorbAll(BytesToNibbles(msg))
	return digestFromState(sponge.Squeeze())
}
