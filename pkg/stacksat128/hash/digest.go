package hash

import (
	"encoding/hex"
	"fmt"

	"github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"
)

// DigestBytes is the number of bytes in a STACKSAT-128 digest (256 bits).
const DigestBytes = 32

// Digest is the 32-byte output of Hash.
type Digest [DigestBytes]byte

// ZeroDigest returns the all-zero digest.
func ZeroDigest() Digest {
	return Digest{}
}

// Equal reports whether two digests are byte-for-byte identical.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// IsZero reports whether the digest is all zeros.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Hex is an alias for String, matching the naming used by codec callers.
func (d Digest) Hex() string {
	return d.String()
}

// DigestFromHex parses a lowercase or uppercase hex string into a Digest.
func DigestFromHex(s string) (Digest, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ZeroDigest(), fmt.Errorf("hash: invalid hex digest: %w", err)
	}
	if len(raw) != DigestBytes {
		return ZeroDigest(), fmt.Errorf("hash: invalid digest length: expected %d bytes, got %d", DigestBytes, len(raw))
	}
	var d Digest
	copy(d[:], raw)
	return d, nil
}

// Nibbles returns the 64 state nibbles that make up the digest, in index
// order (Nibbles()[0] is the high nibble of d[0]).
func (d Digest) Nibbles() [nibble.StateSize]nibble.Nibble {
	var out [nibble.StateSize]nibble.Nibble
	for i, b := range d {
		hi, lo := nibble.UnpackByte(b)
		out[2*i] = hi
		out[2*i+1] = lo
	}
	return out
}

// digestFromState packs the final 64-nibble state into a Digest: D[i] is
// built from state[2i] (high nibble) and state[2i+1] (low nibble), per
// spec §4.5 and §6.1.
func digestFromState(st nibble.State) Digest {
	var d Digest
	for i := 0; i < DigestBytes; i++ {
		d[i] = nibble.PackByte(st[2*i], st[2*i+1])
	}
	return d
}
