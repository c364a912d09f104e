package script

import "github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"

// round emits one full STACKSAT-128 round (spec §4.4): SubNibbles,
// Permute, MixColumns, AddConstant, in that order, matching hash.round.
func round(t *depthTracker, r int) {
	subNibblesLayer(t)
	permuteLayer(t)
	mixColumnsLayer(t)
	addConstantLayer(t, r)
}

// subNibblesLayer emits the S-box substitution of every state nibble using
// a genuine value-to-offset table lookup (spec §4.6): the 16-entry table is
// pushed once, each state nibble is rolled to the top and consumed as the
// PICK depth, and the alt-stack holds finished results so the table stays
// directly beneath the next lookup's index. This is the one layer where a
// destination's source value is itself the runtime argument to PICK/ROLL,
// rather than a statically known depth.
func subNibblesLayer(t *depthTracker) {
	for d := 15; d >= 0; d-- {
		t.pushConst(int64(nibble.SBox[d]), label{"sboxtable", d})
	}
	for i := 0; i < nibble.StateSize; i++ {
		t.rollByLabel(stateLabel(i), label{"sboxval", i})
		// Bare PICK: pops the rolled value as the runtime depth argument
		// and copies the table entry that many positions below the new
		// top, i.e. SBox[value].
		t.b.Pick()
		t.labels = t.labels[:len(t.labels)-1]
		t.labels = append(t.labels, label{"sboxed", i})
		t.toAlt()
	}
	for i := 0; i < 16; i++ {
		t.drop()
	}
	for j := 0; j < nibble.StateSize; j++ {
		t.fromAlt(stateLabel(nibble.StateSize - 1 - j))
	}
}

// permuteLayer emits the row-rotate+transpose permutation of spec §4.1.
// PermInv is a bijection, so every source state nibble is the input to
// exactly one destination: a plain ROLL suffices, no snapshot is needed.
func permuteLayer(t *depthTracker) {
	for j := 0; j < nibble.StateSize; j++ {
		t.rollByLabel(stateLabel(nibble.PermInv[j]), label{"permuted", j})
	}
	for j := 0; j < nibble.StateSize; j++ {
		t.rename(label{"permuted", j}, stateLabel(j))
	}
}

// mixColumnsLayer emits the per-column additive mix of spec §4.4. Every
// source nibble feeds four distinct outputs, so reads use non-destructive
// PICK against the pre-mix values (still labeled as "state") while results
// accumulate on the alt-stack; the stale pre-mix nibbles are rolled out and
// dropped once every output has been computed, then the alt-stack results
// are restored and relabeled as the new state.
func mixColumnsLayer(t *depthTracker) {
	pushOrder := make([]int, 0, nibble.StateSize)
	for c := 0; c < nibble.Cols; c++ {
		for r := 0; r < nibble.Rows; r++ {
			i0 := r*nibble.Cols + c
			i1 := ((r+1)%nibble.Rows)*nibble.Cols + c
			i2 := ((r+2)%nibble.Rows)*nibble.Cols + c
			i3 := ((r+3)%nibble.Rows)*nibble.Cols + c

			t.pickByLabel(stateLabel(i0), label{"mixsrc0", i0})
			t.pickByLabel(stateLabel(i1), label{"mixsrc1", i1})
			t.add16(label{"mixsum1", i0})
			t.pickByLabel(stateLabel(i2), label{"mixsrc2", i2})
			t.pickByLabel(stateLabel(i3), label{"mixsrc3", i3})
			t.add16(label{"mixsum2", i0})
			t.add16(label{"mixout", i0})
			t.toAlt()
			pushOrder = append(pushOrder, i0)
		}
	}
	for idx := 0; idx < nibble.StateSize; idx++ {
		t.rollByLabel(stateLabel(idx), label{"stale", idx})
		t.drop()
	}
	for k := len(pushOrder) - 1; k >= 0; k-- {
		i0 := pushOrder[k]
		t.fromAlt(stateLabel(i0))
	}
}

// addConstantLayer injects the round constant into state[63] (spec §4.4).
func addConstantLayer(t *depthTracker, r int) {
	t.rollByLabel(stateLabel(nibble.StateSize-1), label{"rcin", 0})
	t.pushConst(int64(nibble.RoundConstants[r]), label{"rcconst", 0})
	t.add16(stateLabel(nibble.StateSize - 1))
}
