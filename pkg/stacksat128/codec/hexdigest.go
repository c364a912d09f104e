package codec

import "github.com/stacksat128/stacksat128/pkg/stacksat128/hash"

// DigestToHex returns the lowercase hex encoding of d. It exists alongside
// hash.Digest.Hex so callers that only import codec (an external-boundary
// package) don't need to reach into hash for a single conversion.
func DigestToHex(d hash.Digest) string {
	return d.Hex()
}

// DigestFromHex parses a hex string into a hash.Digest, wrapping
// hash.DigestFromHex's error in codec.Error for callers that switch on
// ErrorKind rather than unwrap arbitrary errors.
func DigestFromHex(s string) (hash.Digest, error) {
	d, err := hash.DigestFromHex(s)
	if err != nil {
		return hash.ZeroDigest(), Error{Kind: ErrInvalidHexDigest, Message: err.Error()}
	}
	return d, nil
}
