package assembler

import (
	"fmt"

	"github.com/Urethramancer/asm6502/cpu"
)

// sizeBranch: branches are always two bytes.
func sizeBranch(asm *Assembler, inst *Instruction) (int, bool, error) {
	return 2, false, nil
}

// emitBranch encodes a conditional branch. A target address is converted to
// a displacement from the branch instruction; a Relative operand is the
// displacement itself.
func emitBranch(asm *Assembler, inst *Instruction, _ bool) ([]byte, error) {
	v, err := inst.Addressing.Address.Eval(asm)
	if err != nil {
		return nil, err
	}

	disp := v.Value
	if inst.Addressing.Mode == Address {
		disp -= int64(asm.offset)
	}
	if disp < -128 || disp > 127 {
		return nil, fmt.Errorf("%w: displacement %d", ErrBranchOutOfRange, disp)
	}
	return []byte{cpu.Opcodes[inst.Opcode][cpu.Relative], byte(int8(disp))}, nil
}

// writeEntry places `JMP start` at the reset vector.
func (asm *Assembler) writeEntry() error {
	start := asm.Entry()
	at := asm.resetVector
	if at < 0 || at+3 > asm.maxMemory {
		return fmt.Errorf("%w: reset vector $%04X does not fit below $%X", ErrOutOfMemory, at, asm.maxMemory)
	}
	for _, r := range asm.regions {
		if at < r.End() && r.Offset < at+3 {
			return fmt.Errorf("%w at $%04X", ErrEntryOverlap, at)
		}
	}

	target, err := addressWord(addressValue(start))
	if err != nil {
		return err
	}
	asm.offset = at
	asm.write(append([]byte{cpu.OPJMP}, target...))
	return nil
}
