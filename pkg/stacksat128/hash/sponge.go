package hash

import "github.com/stacksat128/stacksat128/pkg/stacksat128/nibble"

// Sponge is the absorb/squeeze interface common to sponge-based hash
// functions: arbitrary-length input is absorbed in rate-sized blocks,
// interleaved with the permutation, and the final state is squeezed into a
// digest. STACKSAT-128 is one-shot only (spec §1 Non-goals: no extendable
// output, no streaming update/finalize beyond this), so Squeeze here simply
// reads out the state reached after the last absorbed block; it does not
// re-permute for a second squeeze the way an XOF sponge would.
type Sponge interface {
	// Init returns a fresh sponge instance with the all-zero initial state.
	Init() Sponge

	// Absorb mixes one rate-sized block of nibbles into the state and
	// applies the full permutation.
	Absorb(block [RateNibbles]nibble.Nibble)

	// Squeeze reads the current 64-nibble state without mutating it.
	Squeeze() nibble.State

	// PadAndAbsorbAll pads msg per spec §4.3 and absorbs every resulting
	// block in order.
	PadAndAbsorbAll(msg []nibble.Nibble)

	// Clone returns an independent copy of the sponge's state.
	Clone() Sponge

	// Reset returns the sponge to its initial all-zero state.
	Reset()
}

// StackSatSponge implements Sponge using the STACKSAT-128 permutation.
type StackSatSponge struct {
	state nibble.State
}

// NewStackSatSponge returns a sponge with the all-zero initial state
// required by spec §4.5 step 3.
func NewStackSatSponge() *StackSatSponge {
	return &StackSatSponge{}
}

// Init returns a fresh StackSatSponge.
func (s *StackSatSponge) Init() Sponge {
	return NewStackSatSponge()
}

// Absorb mixes one rate block into the rate portion of the state and runs
// the 16-round permutation (spec §4.5 step 4).
func (s *StackSatSponge) Absorb(block [RateNibbles]nibble.Nibble) {
	for i := 0; i < RateNibbles; i++ {
		s.state[i] = nibble.Add16(s.state[i], block[i])
	}
	for r := 0; r < Rounds; r++ {
		round(&s.state, r)
	}
}

// Squeeze returns the full 64-nibble state reached after the last Absorb.
func (s *StackSatSponge) Squeeze() nibble.State {
	return s.state
}

// PadAndAbsorbAll pads the nibble sequence and absorbs every RateNibbles
// block it produces, in order.
func (s *StackSatSponge) PadAndAbsorbAll(msg []nibble.Nibble) {
	padded := Pad(msg)
	for offset := 0; offset < len(padded); offset += RateNibbles {
		var block [RateNibbles]nibble.Nibble
		copy(block[:], padded[offset:offset+RateNibbles])
		s.Absorb(block)
	}
}

// Clone returns an independent copy of the sponge.
func (s *StackSatSponge) Clone() Sponge {
	clone := *s
	return &clone
}

// Reset returns the sponge to its initial all-zero state.
func (s *StackSatSponge) Reset() {
	s.state = nibble.State{}
}
