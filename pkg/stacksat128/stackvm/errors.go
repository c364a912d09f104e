package stackvm

import "errors"

var (
	// ErrStackUnderflow is returned when an opcode needs more elements than
	// are present on the main or alt stack.
	ErrStackUnderflow = errors.New("stackvm: stack underflow")

	// ErrStackOverflow is returned when an opcode would push the combined
	// element count (main stack + alt stack) past the machine's ceiling.
	ErrStackOverflow = errors.New("stackvm: stack overflow")

	// ErrUnbalancedControlFlow is returned when IF/ELSE/ENDIF do not nest
	// correctly within a script.
	ErrUnbalancedControlFlow = errors.New("stackvm: unbalanced IF/ELSE/ENDIF")

	// ErrNonEmptyAltStack is returned by Run when the alt-stack is not
	// empty at program end (spec §5: "must leave it empty at program end").
	ErrNonEmptyAltStack = errors.New("stackvm: alt-stack not empty at program end")

	// ErrUnknownOpcode is returned when a Script contains an Opcode value
	// the machine does not recognise.
	ErrUnknownOpcode = errors.New("stackvm: unknown opcode")
)
