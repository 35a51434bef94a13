package disassembler

import (
	"errors"
	"fmt"

	"github.com/Urethramancer/asm6502/cpu"
)

var (
	// ErrUnknownOpcode is returned for bytes that are not official NMOS opcodes.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrTruncated is returned when the operand runs past the end of the code.
	ErrTruncated = errors.New("truncated instruction")
)

// Instruction represents a single decoded instruction at a specific address.
type Instruction struct {
	Address  int
	Op       byte
	Mnemonic string
	Mode     cpu.Mode
	// Operand is the raw operand; branch displacements are sign extended.
	Operand int
	Size    int
}

// Decode decodes the instruction at the start of code, which lives at address pc.
func Decode(code []byte, pc int) (Instruction, error) {
	if len(code) == 0 {
		return Instruction{}, ErrTruncated
	}
	inst, ok := cpu.Lookup(code[0])
	if !ok {
		return Instruction{}, fmt.Errorf("%w $%02X at $%04X", ErrUnknownOpcode, code[0], pc)
	}

	out := Instruction{
		Address:  pc,
		Op:       inst.Opcode,
		Mnemonic: inst.Mnemonic,
		Mode:     inst.Mode,
		Size:     inst.Size(),
	}
	if len(code) < out.Size {
		return Instruction{}, fmt.Errorf("%w: %s at $%04X", ErrTruncated, out.Mnemonic, pc)
	}

	switch out.Mode.OperandSize() {
	case 1:
		out.Operand = int(code[1])
		if out.Mode == cpu.Relative {
			out.Operand = int(int8(code[1]))
		}
	case 2:
		out.Operand = int(cpu.BytesWord(code[1:3]))
	}
	return out, nil
}

// Operands formats the operand in assembler syntax.
func (i Instruction) Operands() string {
	switch i.Mode {
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", i.Operand)
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", i.Operand)
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", i.Operand)
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", i.Operand)
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", i.Operand)
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", i.Operand)
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", i.Operand)
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", i.Operand)
	case cpu.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", i.Operand)
	case cpu.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", i.Operand)
	case cpu.Relative:
		return fmt.Sprintf("*%+d", i.Operand)
	}
	return ""
}

func (i Instruction) String() string {
	if ops := i.Operands(); ops != "" {
		return i.Mnemonic + " " + ops
	}
	return i.Mnemonic
}
