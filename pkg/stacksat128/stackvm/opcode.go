// Package stackvm implements the abstract stack machine of spec §6.2: the
// execution model targeted by the STACKSAT-128 script emitter. It is
// intentionally minimal and host-agnostic — it is not a specific script
// engine (Bitcoin Script, Simplicity, or otherwise), only the opcode
// semantics the emitter is required to produce valid programs for.
package stackvm

// Opcode identifies one operation of the abstract machine.
type Opcode int

const (
	OpPush Opcode = iota
	OpAdd
	OpSub
	OpDup
	Op2Dup
	OpDrop
	Op2Drop
	OpSwap
	OpRot
	OpPick
	OpRoll
	OpIf
	OpElse
	OpEndIf
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpEqual
	OpEqualVerify
	OpToAltStack
	OpFromAltStack
)

var opcodeNames = map[Opcode]string{
	OpPush:               "PUSH",
	OpAdd:                "ADD",
	OpSub:                "SUB",
	OpDup:                "DUP",
	Op2Dup:               "2DUP",
	OpDrop:               "DROP",
	Op2Drop:              "2DROP",
	OpSwap:               "SWAP",
	OpRot:                "ROT",
	OpPick:               "PICK",
	OpRoll:               "ROLL",
	OpIf:                 "IF",
	OpElse:               "ELSE",
	OpEndIf:              "ENDIF",
	OpGreaterThan:        "GREATERTHAN",
	OpGreaterThanOrEqual: "GREATERTHANOREQUAL",
	OpLessThan:           "LESSTHAN",
	OpEqual:              "EQUAL",
	OpEqualVerify:        "EQUALVERIFY",
	OpToAltStack:         "TOALTSTACK",
	OpFromAltStack:       "FROMALTSTACK",
}

// String implements fmt.Stringer for diagnostics.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeNames))
	for op, name := range opcodeNames {
		m[name] = op
	}
	return m
}()

// ParseOpcode looks up an Opcode by its String() spelling, for callers
// (pkg/stacksat128/codec) that deserialize a Script from an external,
// text-based representation.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// Instruction is one step of a Script: an opcode plus, for PUSH, the
// constant it carries. PICK and ROLL take no immediate operand — matching
// spec §6.2's PICK(n)/ROLL(n), the depth n is popped from the top of the
// stack at run time, exactly like a real script engine's OP_PICK/OP_ROLL.
// This is what lets the emitter perform genuine value-to-offset table
// lookups (spec §4.6's S-box step): push the table, push the nibble value
// as n, then PICK.
type Instruction struct {
	Op      Opcode
	Operand int64
}

// Script is an ordered sequence of instructions for the abstract machine.
type Script []Instruction
