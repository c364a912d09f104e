package script

import (
	"fmt"

	"github.com/stacksat128/stacksat128/pkg/stacksat128/stackvm"
)

// label names one value the emitter is currently tracking on the abstract
// machine's stacks. kind distinguishes the role (message nibble, state
// slot, scratch temporary, ...); idx disambiguates within a kind. Labels
// are never inspected by the machine itself — they exist only at emission
// time, the compile-time analogue of bitcoinecho's stack bookkeeping
// (DESIGN.md's "script" entry).
type label struct {
	kind string
	idx  int
}

func stateLabel(i int) label    { return label{"state", i} }
func msgLabel(i int) label      { return label{"msg", i} }
func expectedLabel(i int) label { return label{"expected", i} }

// depthTracker mirrors, at compile time, what the abstract machine's real
// stack and alt-stack will hold once the emitted instructions run. It never
// executes anything; it only computes how deep a named value currently
// sits so the emitter can issue PICK/ROLL with the right runtime depth.
// This is the static counterpart of a real stack machine's runtime state —
// the same relationship bitcoinecho's ScriptEngine has to its stack, but
// computed ahead of time instead of by interpreting opcodes.
type depthTracker struct {
	b      *stackvm.Builder
	labels []label // index 0 = bottom, last = top
	alt    []label
}

func newDepthTracker(b *stackvm.Builder, initial []label) *depthTracker {
	labels := make([]label, len(initial))
	copy(labels, initial)
	return &depthTracker{b: b, labels: labels}
}

// depthOf returns how many elements sit above the nearest (topmost) value
// carrying lbl, i.e. the depth PICK/ROLL would need to reach it.
func (t *depthTracker) depthOf(lbl label) int {
	for i := len(t.labels) - 1; i >= 0; i-- {
		if t.labels[i] == lbl {
			return len(t.labels) - 1 - i
		}
	}
	panic(fmt.Sprintf("stacksat128/script: label %v not on tracked stack", lbl))
}

// pushConst emits PUSH(v) and records the result under lbl.
func (t *depthTracker) pushConst(v int64, lbl label) {
	t.b.Push(v)
	t.labels = append(t.labels, lbl)
}

// rollByLabel emits the PUSH(depth)+ROLL pair that brings the value named
// lbl to the top, destructively removing it from its old position. newLbl
// renames the relocated value; a zero newLbl keeps the old label.
func (t *depthTracker) rollByLabel(lbl label, newLbl label) {
	d := t.depthOf(lbl)
	t.b.RollAt(d)
	idx := len(t.labels) - 1 - d
	t.labels = append(t.labels[:idx], t.labels[idx+1:]...)
	if newLbl == (label{}) {
		newLbl = lbl
	}
	t.labels = append(t.labels, newLbl)
}

// pickByLabel emits the PUSH(depth)+PICK pair that copies the value named
// lbl to the top, leaving the original in place.
func (t *depthTracker) pickByLabel(lbl label, newLbl label) {
	d := t.depthOf(lbl)
	t.b.PickAt(d)
	t.labels = append(t.labels, newLbl)
}

// drop emits DROP and forgets the topmost tracked label.
func (t *depthTracker) drop() {
	t.b.Drop()
	t.labels = t.labels[:len(t.labels)-1]
}

// add16 emits the mod-16 addition gadget of spec §4.6 (ADD; DUP; PUSH 15;
// GREATERTHAN; IF PUSH 16; SUB; ENDIF) over the top two tracked values and
// labels the single surviving result newLbl.
func (t *depthTracker) add16(newLbl label) {
	t.b.Add().Dup().Push(15).GreaterThan().If().Push(16).Sub().EndIf()
	t.labels = t.labels[:len(t.labels)-2]
	t.labels = append(t.labels, newLbl)
}

// toAlt emits TOALTSTACK, moving the top tracked value to the alt-stack.
func (t *depthTracker) toAlt() {
	t.b.ToAltStack()
	n := len(t.labels)
	t.alt = append(t.alt, t.labels[n-1])
	t.labels = t.labels[:n-1]
}

// fromAlt emits FROMALTSTACK and labels the restored value lbl (the
// alt-stack is pure scratch space to the emitter; its own label bookkeeping
// matters only to the extent it keeps toAlt/fromAlt calls balanced).
func (t *depthTracker) fromAlt(lbl label) {
	t.b.FromAltStack()
	t.alt = t.alt[:len(t.alt)-1]
	t.labels = append(t.labels, lbl)
}

// equalVerify emits EQUALVERIFY over the top two tracked values.
func (t *depthTracker) equalVerify() {
	t.b.EqualVerify()
	t.labels = t.labels[:len(t.labels)-2]
}

// equalFinal emits EQUAL over the top two tracked values, leaving the
// boolean result as the script's final value.
func (t *depthTracker) equalFinal(newLbl label) {
	t.b.Equal()
	t.labels = t.labels[:len(t.labels)-2]
	t.labels = append(t.labels, newLbl)
}

// rename reassigns the label of the topmost value carrying old to next,
// without emitting any instruction. Used when a layer is logically done
// writing a slot under a scratch name and wants to expose it under its
// permanent name.
func (t *depthTracker) rename(old, next label) {
	for i := len(t.labels) - 1; i >= 0; i-- {
		if t.labels[i] == old {
			t.labels[i] = next
			return
		}
	}
	panic(fmt.Sprintf("stacksat128/script: rename: label %v not found", old))
}
