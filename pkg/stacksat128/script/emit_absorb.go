package script

import "github.com/stacksat128/stacksat128/pkg/stacksat128/hash"

// absorbBlock emits the per-nibble rate addition of spec §4.5's absorb
// step: for i in [0, RateNibbles), roll the next message nibble and the
// current state[i] to the top and replace state[i] with their mod-16 sum.
// msgOffset is the index, within the full padded message, of this block's
// first nibble.
func absorbBlock(t *depthTracker, msgOffset int) {
	for i := 0; i < hash.RateNibbles; i++ {
		t.rollByLabel(msgLabel(msgOffset+i), label{"msgval", i})
		t.rollByLabel(stateLabel(i), label{"stateval", i})
		t.add16(stateLabel(i))
	}
}
