package stackvm

// DefaultMaxElements is a generous default ceiling on the combined number of
// main-stack and alt-stack elements a Machine will tolerate before reporting
// ErrStackOverflow. Callers that want to assert a specific resource budget
// (spec §5) should use NewMachineWithLimit instead.
const DefaultMaxElements = 1 << 20

// Machine is the abstract stack machine of spec §6.2: a main operand stack,
// an alt-stack, and the opcode set ADD, SUB, DUP, 2DUP, DROP, 2DROP, SWAP,
// ROT, PICK(n), ROLL(n), IF/ELSE/ENDIF, GREATERTHAN, GREATERTHANOREQUAL,
// LESSTHAN, EQUAL, EQUALVERIFY, TOALTSTACK, FROMALTSTACK, PUSH(k).
type Machine struct {
	stack    []int64
	altStack []int64
	maxElems int

	// peakElements records the largest combined stack+altstack size seen
	// during the most recent Run, for resource-budget diagnostics.
	peakElements int
}

// NewMachine returns a Machine with DefaultMaxElements as its ceiling.
func NewMachine() *Machine {
	return NewMachineWithLimit(DefaultMaxElements)
}

// NewMachineWithLimit returns a Machine that aborts with ErrStackOverflow
// once the combined stack and alt-stack element count would exceed limit.
func NewMachineWithLimit(limit int) *Machine {
	return &Machine{maxElems: limit}
}

// PeakElements returns the largest combined main+alt stack size observed
// during the most recently completed Run call.
func (m *Machine) PeakElements() int { return m.peakElements }
