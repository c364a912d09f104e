package stackvm

// total returns the combined element count across both stacks, used to
// enforce the resource ceiling (spec §5).
func (m *Machine) total() int {
	return len(m.stack) + len(m.altStack)
}

func (m *Machine) trackPeak() {
	if t := m.total(); t > m.peakElements {
		m.peakElements = t
	}
}

func (m *Machine) push(v int64) error {
	if m.total()+1 > m.maxElems {
		return ErrStackOverflow
	}
	m.stack = append(m.stack, v)
	m.trackPeak()
	return nil
}

func (m *Machine) pushAlt(v int64) error {
	if m.total()+1 > m.maxElems {
		return ErrStackOverflow
	}
	m.altStack = append(m.altStack, v)
	m.trackPeak()
	return nil
}

func (m *Machine) pop() (int64, error) {
	if len(m.stack) == 0 {
		return 0, ErrStackUnderflow
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

func (m *Machine) popAlt() (int64, error) {
	if len(m.altStack) == 0 {
		return 0, ErrStackUnderflow
	}
	v := m.altStack[len(m.altStack)-1]
	m.altStack = m.altStack[:len(m.altStack)-1]
	return v, nil
}

// pop2 pops the top two elements, returning (top, secondFromTop).
func (m *Machine) pop2() (top, second int64, err error) {
	top, err = m.pop()
	if err != nil {
		return 0, 0, err
	}
	second, err = m.pop()
	if err != nil {
		return 0, 0, err
	}
	return top, second, nil
}

// peek reads the element n below the top without removing it; n=0 is the
// top itself, matching spec §6.2's PICK(n) semantics.
func (m *Machine) peek(n int) (int64, error) {
	idx := len(m.stack) - 1 - n
	if n < 0 || idx < 0 {
		return 0, ErrStackUnderflow
	}
	return m.stack[idx], nil
}

// peek2 reads the top two elements without removing them, returning
// (top, secondFromTop).
func (m *Machine) peek2() (top, second int64, err error) {
	top, err = m.peek(0)
	if err != nil {
		return 0, 0, err
	}
	second, err = m.peek(1)
	if err != nil {
		return 0, 0, err
	}
	return top, second, nil
}

// remove deletes the element n below the top and returns it, matching
// spec §6.2's ROLL(n) semantics.
func (m *Machine) remove(n int) (int64, error) {
	idx := len(m.stack) - 1 - n
	if n < 0 || idx < 0 {
		return 0, ErrStackUnderflow
	}
	v := m.stack[idx]
	m.stack = append(m.stack[:idx], m.stack[idx+1:]...)
	return v, nil
}

// rot implements x1 x2 x3 -> x2 x3 x1.
func (m *Machine) rot() error {
	x3, err := m.pop()
	if err != nil {
		return err
	}
	x2, err := m.pop()
	if err != nil {
		return err
	}
	x1, err := m.pop()
	if err != nil {
		return err
	}
	if err := m.push(x2); err != nil {
		return err
	}
	if err := m.push(x3); err != nil {
		return err
	}
	return m.push(x1)
}

func (m *Machine) pushBool(b bool) error {
	if b {
		return m.push(1)
	}
	return m.push(0)
}
