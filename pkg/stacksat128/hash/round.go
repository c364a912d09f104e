// Package hash implements the STACKSAT-128 sponge construction: padding,
// the 16-round permutation, and the absorb/squeeze driver described in
// spec §4.3-§4.5. It mirrors the shape of a conventional sponge-based hash
// package (an explicit round function, a Sponge interface, a one-shot Hash
// entry point) while every arithmetic step stays inside the nibble domain
// of pkg/stacksat128/nibble.
package hash

import "github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"

// Rounds is the number of permutation rounds applied per absorbed block.
const Rounds = 16

// round applies one STACKSAT-128 round in place: SubNibbles, Permute,
// MixColumns, AddConstant, exactly as spec §4.4 and the reference
// implementation define it.
func round(st *nibble.State, r int) {
	subNibbles(st)
	permute(st)
	mixColumns(st)
	addConstant(st, r)
}

// subNibbles replaces every state nibble with its S-box image.
func subNibbles(st *nibble.State) {
	for i, v := range st {
		st[i] = nibble.SBox[v]
	}
}

// permute reorders the state according to the composed row-rotate+transpose
// permutation. state[j] = snapshot[PermInv[j]] for every destination j.
func permute(st *nibble.State) {
	snapshot := *st
	for j := 0; j < nibble.StateSize; j++ {
		st[j] = snapshot[nibble.PermInv[j]]
	}
}

// mixColumns additively mixes each column: the output nibble at row r is the
// mod-16 sum of rows r, r+1, r+2 and r+3 (mod 8) of its column, read from the
// pre-mixing snapshot (the read side is atomic with respect to the writes).
func mixColumns(st *nibble.State) {
	prev := *st
	for c := 0; c < nibble.Cols; c++ {
		for r := 0; r < nibble.Rows; r++ {
			i0 := r*nibble.Cols + c
			i1 := ((r+1)%nibble.Rows)*nibble.Cols + c
			i2 := ((r+2)%nibble.Rows)*nibble.Cols + c
			i3 := ((r+3)%nibble.Rows)*nibble.Cols + c

			sum1 := nibble.Add16(prev[i0], prev[i1])
			sum2 := nibble.Add16(prev[i2], prev[i3])
			st[i0] = nibble.Add16(sum1, sum2)
		}
	}
}

// addConstant injects the round constant into the last state nibble.
func addConstant(st *nibble.State, r int) {
	st[nibble.StateSize-1] = nibble.Add16(st[nibble.StateSize-1], nibble.RoundConstants[r])
}
