package codec

import (
	"encoding/json"
	"fmt"

	"github.com/stacksat128/stacksat128/pkg/stacksat128/stackvm"
)

// instructionRecord is the on-wire form of one stackvm.Instruction: the
// opcode by name (stable across Opcode constant renumbering) and its PUSH
// operand, omitted for every opcode but PUSH.
type instructionRecord struct {
	Opcode  string `json:"opcode"`
	Operand int64  `json:"operand,omitempty"`
}

// EncodeScript serializes s to a compact JSON record list, one object per
// instruction.
func EncodeScript(s stackvm.Script) ([]byte, error) {
	records := make([]instructionRecord, len(s))
	for i, instr := range s {
		records[i] = instructionRecord{Opcode: instr.Op.String(), Operand: instr.Operand}
	}
	out, err := json.Marshal(records)
	if err != nil {
		return nil, Error{Kind: ErrMalformedScript, Message: fmt.Sprintf("encoding script: %v", err)}
	}
	return out, nil
}

// DecodeScript parses the JSON form produced by EncodeScript back into a
// stackvm.Script.
func DecodeScript(data []byte) (stackvm.Script, error) {
	var records []instructionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, Error{Kind: ErrMalformedScript, Message: fmt.Sprintf("decoding script: %v", err)}
	}
	out := make(stackvm.Script, len(records))
	for i, rec := range records {
		op, ok := stackvm.ParseOpcode(rec.Opcode)
		if !ok {
			return nil, Error{Kind: ErrUnknownOpcode, Message: fmt.Sprintf("unknown opcode %q at instruction %d", rec.Opcode, i)}
		}
		out[i] = stackvm.Instruction{Op: op, Operand: rec.Operand}
	}
	return out, nil
}
