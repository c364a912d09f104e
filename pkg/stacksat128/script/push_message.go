// Package script compiles STACKSAT-128 into programs for the abstract
// stack machine of pkg/stacksat128/stackvm: EmitPushMessage lays the padded
// message on the stack, EmitCompute reduces it to the 64 final state
// nibbles, and EmitVerify compares that result against an expected digest.
// EmitCompute's program depends only on the message's length, not its
// bytes, so one compute script serves every message of that length;
// EmitPushMessage carries the message's nibbles and EmitVerify the expected
// digest as PUSH operands.
package script

import (
	"fmt"

	"github.com/stacksat128/stacksat128/pkg/stacksat128/hash"
	"github.com/stacksat128/stacksat128/pkg/stacksat128/stackvm"
)

// MaxMessageBytes bounds the input EmitPushMessage/EmitCompute will accept:
// a longer message is rejected with an error.
const MaxMessageBytes = 1024

// paddedNibbleLen returns the number of nibbles hash.Pad produces for a
// messageLenBytes-byte message, without needing the message itself.
func paddedNibbleLen(messageLenBytes int) int {
	n := messageLenBytes * 2
	n++ // the 0x8 marker
	for n%hash.RateNibbles != hash.RateNibbles-1 {
		n++
	}
	n++ // the 0x1 marker
	return n
}

// EmitPushMessage emits the instruction sequence that pushes the padded,
// nibble-expanded form of msg onto the main stack (spec §6.3): each nibble
// is a PUSH, emitted in index order so the last instruction pushes the
// final padding nibble (0x1) on top. EmitCompute assumes this layout as its
// precondition.
func EmitPushMessage(msg []byte) (stackvm.Script, error) {
	if len(msg) > MaxMessageBytes {
		return nil, fmt.Errorf("stacksat128/script: message too large: %d bytes (max %d)", len(msg), MaxMessageBytes)
	}
	padded := hash.Pad(hash.BytesToNibbles(msg))
	b := stackvm.NewBuilder()
	for _, nib := range padded {
		b.Push(int64(nib))
	}
	return b.Script(), nil
}
