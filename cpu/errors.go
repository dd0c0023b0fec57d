package cpu

import (
	"errors"
	"fmt"
)

var ErrUnsupportedInstruction = errors.New("unsupported instruction")

// UnsupportedInstructionError reports an opcode the CPU does not define.
type UnsupportedInstructionError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnsupportedInstructionError) Error() string {
	return fmt.Sprintf("%s: 0x%02x at 0x%04x", ErrUnsupportedInstruction, e.Opcode, e.PC)
}

func (e *UnsupportedInstructionError) Unwrap() error {
	return ErrUnsupportedInstruction
}
