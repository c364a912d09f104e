package script

import (
	"github.com/stacksat128/stacksat128/pkg/stacksat128/hash"
	"github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"
	"github.com/stacksat128/stacksat128/pkg/stacksat128/stackvm"
)

// EmitVerify emits the instruction sequence of spec §4.7/§6.3: assuming the
// top of stack already holds the 64 computed state nibbles in EmitCompute's
// output layout (top = state[0], depth 63 = state[63]), push the 64
// nibbles of expected in matching order, then compare pairwise with 63
// EQUALVERIFYs and one final EQUAL, leaving a single boolean result on top.
//
// EmitVerify is meant to run immediately after a script built from
// EmitPushMessage+EmitCompute; it starts its own depthTracker seeded with
// that documented layout rather than sharing state with the emitter that
// produced it, the same way the two are documented as independently
// composable scripts.
func EmitVerify(expected hash.Digest) stackvm.Script {
	initial := make([]label, nibble.StateSize)
	for i := 0; i < nibble.StateSize; i++ {
		initial[nibble.StateSize-1-i] = stateLabel(i)
	}

	b := stackvm.NewBuilder()
	t := newDepthTracker(b, initial)

	expNibbles := expected.Nibbles()
	for d := nibble.StateSize - 1; d >= 0; d-- {
		t.pushConst(int64(expNibbles[d]), expectedLabel(d))
	}

	for i := 0; i < nibble.StateSize; i++ {
		t.rollByLabel(stateLabel(i), label{})
		t.rollByLabel(expectedLabel(i), label{})
		if i < nibble.StateSize-1 {
			t.equalVerify()
		} else {
			t.equalFinal(label{"result", 0})
		}
	}

	return t.b.Script()
}
