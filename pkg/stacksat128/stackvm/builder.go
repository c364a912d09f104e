package stackvm

// Builder accumulates instructions into a Script. It is the append-only
// construction surface the emitter (pkg/stacksat128/script) drives: every
// method appends one instruction and returns the Builder for chaining.
type Builder struct {
	instructions Script
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) push(op Opcode, operand int64) *Builder {
	b.instructions = append(b.instructions, Instruction{Op: op, Operand: operand})
	return b
}

// Push appends PUSH(k).
func (b *Builder) Push(k int64) *Builder { return b.push(OpPush, k) }

// Pick appends bare PICK: it pops the depth from the top of stack (placed
// there by a prior Push or by the computation in progress) and copies the
// element that many below the new top to the top.
func (b *Builder) Pick() *Builder { return b.push(OpPick, 0) }

// Roll appends bare ROLL, analogous to Pick but destructive.
func (b *Builder) Roll() *Builder { return b.push(OpRoll, 0) }

// PickAt appends PUSH(n) followed by PICK: the common case where the depth
// is known at emission time rather than computed at run time.
func (b *Builder) PickAt(n int) *Builder { return b.Push(int64(n)).Pick() }

// RollAt appends PUSH(n) followed by ROLL.
func (b *Builder) RollAt(n int) *Builder { return b.Push(int64(n)).Roll() }

// Add appends ADD.
func (b *Builder) Add() *Builder { return b.push(OpAdd, 0) }

// Sub appends SUB.
func (b *Builder) Sub() *Builder { return b.push(OpSub, 0) }

// Dup appends DUP.
func (b *Builder) Dup() *Builder { return b.push(OpDup, 0) }

// TwoDup appends 2DUP.
func (b *Builder) TwoDup() *Builder { return b.push(Op2Dup, 0) }

// Drop appends DROP.
func (b *Builder) Drop() *Builder { return b.push(OpDrop, 0) }

// TwoDrop appends 2DROP.
func (b *Builder) TwoDrop() *Builder { return b.push(Op2Drop, 0) }

// Swap appends SWAP.
func (b *Builder) Swap() *Builder { return b.push(OpSwap, 0) }

// Rot appends ROT.
func (b *Builder) Rot() *Builder { return b.push(OpRot, 0) }

// If appends IF.
func (b *Builder) If() *Builder { return b.push(OpIf, 0) }

// Else appends ELSE.
func (b *Builder) Else() *Builder { return b.push(OpElse, 0) }

// EndIf appends ENDIF.
func (b *Builder) EndIf() *Builder { return b.push(OpEndIf, 0) }

// GreaterThan appends GREATERTHAN.
func (b *Builder) GreaterThan() *Builder { return b.push(OpGreaterThan, 0) }

// GreaterThanOrEqual appends GREATERTHANOREQUAL.
func (b *Builder) GreaterThanOrEqual() *Builder { return b.push(OpGreaterThanOrEqual, 0) }

// LessThan appends LESSTHAN.
func (b *Builder) LessThan() *Builder { return b.push(OpLessThan, 0) }

// Equal appends EQUAL.
func (b *Builder) Equal() *Builder { return b.push(OpEqual, 0) }

// EqualVerify appends EQUALVERIFY.
func (b *Builder) EqualVerify() *Builder { return b.push(OpEqualVerify, 0) }

// ToAltStack appends TOALTSTACK.
func (b *Builder) ToAltStack() *Builder { return b.push(OpToAltStack, 0) }

// FromAltStack appends FROMALTSTACK.
func (b *Builder) FromAltStack() *Builder { return b.push(OpFromAltStack, 0) }

// Append concatenates another script's instructions onto the builder.
func (b *Builder) Append(s Script) *Builder {
	b.instructions = append(b.instructions, s...)
	return b
}

// Script returns the accumulated instruction sequence.
func (b *Builder) Script() Script {
	return b.instructions
}
