package stackvm

// controlFrame tracks one open IF...[ELSE]...ENDIF block while resolving
// jump targets ahead of execution.
type controlFrame struct {
	ifIndex   int
	elseIndex int // -1 if no ELSE seen yet
}

// resolveJumps walks s once and computes, for every IF and ELSE
// instruction, the program-counter to jump to when that instruction does
// not fall through to the next one.
func resolveJumps(s Script) (ifFalseTarget, elseTarget map[int]int, err error) {
	ifFalseTarget = map[int]int{}
	elseTarget = map[int]int{}
	var open []controlFrame

	for idx, instr := range s {
		switch instr.Op {
		case OpIf:
			open = append(open, controlFrame{ifIndex: idx, elseIndex: -1})
		case OpElse:
			if len(open) == 0 {
				return nil, nil, ErrUnbalancedControlFlow
			}
			open[len(open)-1].elseIndex = idx
		case OpEndIf:
			if len(open) == 0 {
				return nil, nil, ErrUnbalancedControlFlow
			}
			frame := open[len(open)-1]
			open = open[:len(open)-1]
			if frame.elseIndex >= 0 {
				ifFalseTarget[frame.ifIndex] = frame.elseIndex + 1
				elseTarget[frame.elseIndex] = idx + 1
			} else {
				ifFalseTarget[frame.ifIndex] = idx + 1
			}
		}
	}
	if len(open) != 0 {
		return nil, nil, ErrUnbalancedControlFlow
	}
	return ifFalseTarget, elseTarget, nil
}

// Run executes s from an empty stack and empty alt-stack. It returns
// (true, nil) if the script completes with a nonzero top-of-stack value and
// an empty alt-stack (spec §5, §4.7); it returns (false, nil) if the script
// completes but the top of stack is zero or missing; it returns a non-nil
// error for any stack discipline violation (underflow, overflow, unbalanced
// control flow, or a non-empty alt-stack at program end).
func (m *Machine) Run(s Script) (bool, error) {
	m.stack = m.stack[:0]
	m.altStack = m.altStack[:0]
	m.peakElements = 0

	ifFalseTarget, elseTarget, err := resolveJumps(s)
	if err != nil {
		return false, err
	}

	pc := 0
	for pc < len(s) {
		instr := s[pc]
		switch instr.Op {
		case OpIf:
			cond, err := m.pop()
			if err != nil {
				return false, err
			}
			if cond != 0 {
				pc++
			} else {
				pc = ifFalseTarget[pc]
			}
			continue
		case OpElse:
			pc = elseTarget[pc]
			continue
		case OpEndIf:
			pc++
			continue
		}

		failed, err := m.execute(instr)
		if err != nil {
			return false, err
		}
		if failed {
			return false, nil
		}
		pc++
	}

	if len(m.altStack) != 0 {
		return false, ErrNonEmptyAltStack
	}
	if len(m.stack) == 0 {
		return false, nil
	}
	return m.stack[len(m.stack)-1] != 0, nil
}

// execute performs a single non-control-flow instruction. The returned
// bool is true only for an EQUALVERIFY mismatch, the one opcode that
// represents an explicit script-level failure rather than a stack error.
func (m *Machine) execute(instr Instruction) (failed bool, err error) {
	switch instr.Op {
	case OpPush:
		return false, m.push(instr.Operand)

	case OpAdd:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		return false, m.push(a + b)

	case OpSub:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		return false, m.push(a - b)

	case OpDup:
		v, err := m.peek(0)
		if err != nil {
			return false, err
		}
		return false, m.push(v)

	case Op2Dup:
		b, a, err := m.peek2()
		if err != nil {
			return false, err
		}
		if err := m.push(a); err != nil {
			return false, err
		}
		return false, m.push(b)

	case OpDrop:
		_, err := m.pop()
		return false, err

	case Op2Drop:
		if _, err := m.pop(); err != nil {
			return false, err
		}
		_, err := m.pop()
		return false, err

	case OpSwap:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		if err := m.push(b); err != nil {
			return false, err
		}
		return false, m.push(a)

	case OpRot:
		return false, m.rot()

	case OpPick:
		n, err := m.pop()
		if err != nil {
			return false, err
		}
		v, err := m.peek(int(n))
		if err != nil {
			return false, err
		}
		return false, m.push(v)

	case OpRoll:
		n, err := m.pop()
		if err != nil {
			return false, err
		}
		v, err := m.remove(int(n))
		if err != nil {
			return false, err
		}
		return false, m.push(v)

	case OpGreaterThan:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		return false, m.pushBool(a > b)

	case OpGreaterThanOrEqual:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		return false, m.pushBool(a >= b)

	case OpLessThan:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		return false, m.pushBool(a < b)

	case OpEqual:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		return false, m.pushBool(a == b)

	case OpEqualVerify:
		b, a, err := m.pop2()
		if err != nil {
			return false, err
		}
		return a != b, nil

	case OpToAltStack:
		v, err := m.pop()
		if err != nil {
			return false, err
		}
		return false, m.pushAlt(v)

	case OpFromAltStack:
		v, err := m.popAlt()
		if err != nil {
			return false, err
		}
		return false, m.push(v)
	}

	return false, ErrUnknownOpcode
}
