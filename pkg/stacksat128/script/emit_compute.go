package script

import (
	"fmt"

	"github.com/stacksat128/stacksat128/pkg/stacksat128/hash"
	"github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"
	"github.com/stacksat128/stacksat128/pkg/stacksat128/stackvm"
)

// EmitCompute emits the instruction sequence that reduces a padded,
// nibble-pushed message of messageLenBytes original bytes (already on the
// main stack, as EmitPushMessage leaves it) to the 64 final state nibbles,
// top-of-stack-first (top holds state[0]) — spec §6.3.
//
// It never inspects the message's content, only its length: the number and
// shape of absorbed blocks is fixed once messageLenBytes is known, which is
// what makes this emission a static, content-independent instruction
// sequence rather than an interpreter.
func EmitCompute(messageLenBytes int) (stackvm.Script, error) {
	if messageLenBytes < 0 {
		return nil, fmt.Errorf("stacksat128/script: negative message length: %d", messageLenBytes)
	}
	if messageLenBytes > MaxMessageBytes {
		return nil, fmt.Errorf("stacksat128/script: message too large: %d bytes (max %d)", messageLenBytes, MaxMessageBytes)
	}

	paddedLen := paddedNibbleLen(messageLenBytes)

	initial := make([]label, paddedLen)
	for i := range initial {
		initial[i] = msgLabel(i)
	}

	b := stackvm.NewBuilder()
	t := newDepthTracker(b, initial)

	for i := nibble.StateSize - 1; i >= 0; i-- {
		t.pushConst(0, stateLabel(i))
	}

	nBlocks := paddedLen / hash.RateNibbles
	for blk := 0; blk < nBlocks; blk++ {
		absorbBlock(t, blk*hash.RateNibbles)
		for r := 0; r < hash.Rounds; r++ {
			round(t, r)
		}
	}

	// Reorder so the top of stack is state[0], descending to state[63] at
	// depth 63 — EmitVerify's documented precondition.
	for i := nibble.StateSize - 1; i >= 0; i-- {
		t.rollByLabel(stateLabel(i), label{})
	}

	return t.b.Script(), nil
}
