package assembler

import (
	"fmt"
)

var origin = &opcode{modes: modes(Address), size: sizeOrigin, emit: emitNothing, pseudo: true, origin: true}

// sizeOrigin moves the write offset. The target has to be known in pass 1.
func sizeOrigin(asm *Assembler, inst *Instruction) (int, bool, error) {
	v, err := inst.Addressing.Address.Eval(asm)
	if err != nil {
		return 0, false, fmt.Errorf("origin must be known when it is reached: %w", err)
	}
	if v.Value < 0 || v.Value >= int64(asm.maxMemory) {
		return 0, false, fmt.Errorf("%w: origin %v is outside memory", ErrOutOfMemory, v)
	}
	asm.offset = int(v.Value)
	return 0, false, nil
}

// sizeData returns a size function for directives with a fixed size.
func sizeData(n int) sizeFunc {
	return func(asm *Assembler, inst *Instruction) (int, bool, error) {
		return n, false, nil
	}
}

func emitNothing(asm *Assembler, inst *Instruction, _ bool) ([]byte, error) {
	return nil, nil
}

// emitByte generates .BYTE data.
func emitByte(asm *Assembler, inst *Instruction, _ bool) ([]byte, error) {
	v, err := inst.Addressing.Address.Eval(asm)
	if err != nil {
		return nil, err
	}
	b, err := dataByte(v)
	if err != nil {
		return nil, err
	}
	return []byte{b}, nil
}

// emitWord generates .WORD data, low byte first.
func emitWord(asm *Assembler, inst *Instruction, _ bool) ([]byte, error) {
	v, err := inst.Addressing.Address.Eval(asm)
	if err != nil {
		return nil, err
	}
	return dataWord(v)
}
