package assembler

import (
	"errors"
	"fmt"

	"github.com/Urethramancer/asm6502/cpu"
)

// modeSet is a bit set of syntactic modes.
type modeSet uint16

func modes(list ...Mode) modeSet {
	var s modeSet
	for _, m := range list {
		s |= 1 << m
	}
	return s
}

func (s modeSet) has(m Mode) bool {
	return m >= 0 && s&(1<<m) != 0
}

// regSet lists the registers an opcode can be indexed by.
type regSet uint8

const (
	indexX regSet = 1 << iota
	indexY
)

func (s regSet) allows(r Register) bool {
	switch r {
	case RegX:
		return s&indexX != 0
	case RegY:
		return s&indexY != 0
	}
	return false
}

// sizeFunc returns the encoded size of an instruction in pass 1 and whether
// its operand was placed in the zero page.
type sizeFunc func(asm *Assembler, inst *Instruction) (int, bool, error)

// emitFunc produces the bytes of an instruction in pass 2.
type emitFunc func(asm *Assembler, inst *Instruction, zeroPage bool) ([]byte, error)

// opcode is one entry of the encoding table.
type opcode struct {
	modes modeSet
	index regSet
	size  sizeFunc
	emit  emitFunc
	// pseudo marks assembler directives; they never become the entry point.
	pseudo bool
	// origin directives bind their label after moving the offset.
	origin bool
	// stop ends assembly.
	stop bool
}

var (
	implied = &opcode{modes: modes(Implied), size: sizeOperand, emit: emitOperand}
	alu     = &opcode{
		modes: modes(Immediate, Address, Indexed, IndexedIndirect, IndirectIndexed),
		index: indexX | indexY,
		size:  sizeOperand,
		emit:  emitOperand,
	}
	store = &opcode{
		modes: modes(Address, Indexed, IndexedIndirect, IndirectIndexed),
		index: indexX | indexY,
		size:  sizeOperand,
		emit:  emitOperand,
	}
	shifter = &opcode{modes: modes(Implied, Accumulator, Address, Indexed), index: indexX, size: sizeOperand, emit: emitOperand}
	incdec  = &opcode{modes: modes(Address, Indexed), index: indexX, size: sizeOperand, emit: emitOperand}
	compare = &opcode{modes: modes(Immediate, Address), size: sizeOperand, emit: emitOperand}
	branch  = &opcode{modes: modes(Address, Relative), size: sizeBranch, emit: emitBranch}
)

// opcodes is the encoding table. Opcode bytes come from cpu.Opcodes.
var opcodes = map[string]*opcode{
	"ADC": alu,
	"AND": alu,
	"ASL": shifter,
	"BCC": branch,
	"BCS": branch,
	"BEQ": branch,
	"BIT": {modes: modes(Address), size: sizeOperand, emit: emitOperand},
	"BMI": branch,
	"BNE": branch,
	"BPL": branch,
	"BRK": implied,
	"BVC": branch,
	"BVS": branch,
	"CLC": implied,
	"CLD": implied,
	"CLI": implied,
	"CLV": implied,
	"CMP": alu,
	"CPX": compare,
	"CPY": compare,
	"DEC": incdec,
	"DEX": implied,
	"DEY": implied,
	"EOR": alu,
	"INC": incdec,
	"INX": implied,
	"INY": implied,
	"JMP": {modes: modes(Address, Indirect), size: sizeOperand, emit: emitOperand},
	"JSR": {modes: modes(Address), size: sizeOperand, emit: emitOperand},
	"LDA": alu,
	"LDX": {modes: modes(Immediate, Address, Indexed), index: indexY, size: sizeOperand, emit: emitOperand},
	"LDY": {modes: modes(Immediate, Address, Indexed), index: indexX, size: sizeOperand, emit: emitOperand},
	"LSR": shifter,
	"NOP": implied,
	"ORA": alu,
	"PHA": implied,
	"PHP": implied,
	"PLA": implied,
	"PLP": implied,
	"ROL": shifter,
	"ROR": shifter,
	"RTI": implied,
	"RTS": implied,
	"SBC": alu,
	"SEC": implied,
	"SED": implied,
	"SEI": implied,
	"STA": store,
	// STX and STY only have zero page indexed forms.
	"STX": {modes: modes(Address, Indexed), index: indexY, size: sizeOperand, emit: emitOperand},
	"STY": {modes: modes(Address, Indexed), index: indexX, size: sizeOperand, emit: emitOperand},
	"TAX": implied,
	"TAY": implied,
	"TSX": implied,
	"TXA": implied,
	"TXS": implied,
	"TYA": implied,

	// Pseudo-ops
	"ORG":   origin,
	".ORG":  origin,
	".BYTE": {modes: modes(Address, Immediate), size: sizeData(1), emit: emitByte, pseudo: true},
	".WORD": {modes: modes(Address), size: sizeData(2), emit: emitWord, pseudo: true},
	".END":  {modes: modes(Implied), size: sizeData(0), emit: emitNothing, pseudo: true, stop: true},
}

// validate checks the operand form and index register against the table entry.
func (op *opcode) validate(inst *Instruction) error {
	a := inst.Addressing
	if !op.modes.has(a.Mode) {
		return fmt.Errorf("%w `%s` (%v)", ErrAddressingNotAllowed, inst.Opcode, a.Mode)
	}
	if a.Mode != Implied && a.Mode != Accumulator && a.Address == nil {
		return fmt.Errorf("%w `%s`: missing operand", ErrAddressingNotAllowed, inst.Opcode)
	}

	switch a.Mode {
	case Indexed:
		if !op.index.allows(a.Register) {
			return fmt.Errorf("%w: `%s` can not be indexed by register %v", ErrRegisterNotAllowed, inst.Opcode, a.Register)
		}
	case IndexedIndirect:
		if a.Register != RegX {
			return fmt.Errorf("%w: register %v can not be used for indexed indirect addressing", ErrRegisterNotAllowed, a.Register)
		}
	case IndirectIndexed:
		if a.Register != RegY {
			return fmt.Errorf("%w: register %v can not be used for indirect indexed addressing", ErrRegisterNotAllowed, a.Register)
		}
	}
	return nil
}

// addressModes returns the zero page and absolute encodings of an Address
// or Indexed operand.
func addressModes(a Addressing) (cpu.Mode, cpu.Mode) {
	if a.Mode == Indexed {
		if a.Register == RegY {
			return cpu.ZeroPageY, cpu.AbsoluteY
		}
		return cpu.ZeroPageX, cpu.AbsoluteX
	}
	return cpu.ZeroPage, cpu.Absolute
}

// concreteMode picks the encoding for an operand given the pass 1 decision.
func concreteMode(name string, a Addressing, zeroPage bool) cpu.Mode {
	switch a.Mode {
	case Implied:
		// Shifts written without an operand act on the accumulator.
		if _, ok := cpu.Opcodes[name][cpu.Implied]; !ok {
			return cpu.Accumulator
		}
		return cpu.Implied
	case Accumulator:
		return cpu.Accumulator
	case Immediate:
		return cpu.Immediate
	case Address, Indexed:
		zp, absolute := addressModes(a)
		if zeroPage {
			return zp
		}
		return absolute
	case Indirect:
		return cpu.Indirect
	case IndexedIndirect:
		return cpu.IndexedIndirect
	case IndirectIndexed:
		return cpu.IndirectIndexed
	}
	return cpu.Relative
}

// sizeOperand sizes a regular instruction. Address and Indexed operands go
// in the zero page when they already resolve to a byte; an unresolved
// forward reference takes the absolute form so sizes never grow in pass 2.
func sizeOperand(asm *Assembler, inst *Instruction) (int, bool, error) {
	a := inst.Addressing
	zeroPage := false
	if a.Mode == Address || a.Mode == Indexed {
		zpMode, absMode := addressModes(a)
		_, hasZP := cpu.Opcodes[inst.Opcode][zpMode]
		_, hasAbs := cpu.Opcodes[inst.Opcode][absMode]

		v, err := a.Address.Eval(asm)
		resolved := true
		if errors.Is(err, ErrUndefinedLabel) {
			resolved = false
		} else if err != nil {
			return 0, false, err
		}
		fits := resolved && isZeroPage(v)

		switch {
		case !hasAbs:
			if resolved && !fits {
				return 0, false, fmt.Errorf("%w: `%s %v`", ErrAbsoluteIndexed, inst.Opcode, a)
			}
			zeroPage = true
		case hasZP && fits:
			zeroPage = true
		}
	}
	mode := concreteMode(inst.Opcode, a, zeroPage)
	return 1 + mode.OperandSize(), zeroPage, nil
}

// emitOperand encodes a regular instruction.
func emitOperand(asm *Assembler, inst *Instruction, zeroPage bool) ([]byte, error) {
	a := inst.Addressing
	mode := concreteMode(inst.Opcode, a, zeroPage)
	code := []byte{cpu.Opcodes[inst.Opcode][mode]}
	if mode.OperandSize() == 0 {
		return code, nil
	}

	v, err := a.Address.Eval(asm)
	if err != nil {
		return nil, err
	}

	switch {
	case mode == cpu.Immediate:
		b, err := dataByte(v)
		if err != nil {
			return nil, err
		}
		return append(code, b), nil

	case mode == cpu.IndexedIndirect || mode == cpu.IndirectIndexed:
		if v.Value < 0 || v.Value > 0xFF {
			return nil, fmt.Errorf("%w: %v is not a zero page address", ErrValueTooLarge, v)
		}
		return append(code, byte(v.Value)), nil

	case mode.IsZeroPage():
		if !isZeroPage(v) {
			if _, ok := cpu.Opcodes[inst.Opcode][mode.Absolute()]; !ok {
				return nil, fmt.Errorf("%w: `%s %v`", ErrAbsoluteIndexed, inst.Opcode, a)
			}
			return nil, fmt.Errorf("%w: %v is not a zero page address", ErrValueTooLarge, v)
		}
		return append(code, byte(v.Value)), nil
	}

	w, err := addressWord(v)
	if err != nil {
		return nil, err
	}
	return append(code, w...), nil
}
