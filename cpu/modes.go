package cpu

// Mode is a concrete 6502 operand encoding.
type Mode int

const (
	// Implied takes no operand: CLC
	Implied Mode = iota
	// Accumulator operates on A: LSR A
	Accumulator
	// Immediate: LDA #$10
	Immediate
	// ZeroPage: LDA $10
	ZeroPage
	// ZeroPageX: LDA $10,X
	ZeroPageX
	// ZeroPageY: LDX $10,Y
	ZeroPageY
	// Absolute: LDA $1000
	Absolute
	// AbsoluteX: LDA $1000,X
	AbsoluteX
	// AbsoluteY: LDA $1000,Y
	AbsoluteY
	// Indirect is only used by JMP: JMP ($1000)
	Indirect
	// IndexedIndirect: LDA ($10,X)
	IndexedIndirect
	// IndirectIndexed: LDA ($10),Y
	IndirectIndexed
	// Relative is the signed displacement of a branch.
	Relative
)

var modeNames = [...]string{
	Implied:         "implied",
	Accumulator:     "accumulator",
	Immediate:       "immediate",
	ZeroPage:        "zero page",
	ZeroPageX:       "zero page,X",
	ZeroPageY:       "zero page,Y",
	Absolute:        "absolute",
	AbsoluteX:       "absolute,X",
	AbsoluteY:       "absolute,Y",
	Indirect:        "indirect",
	IndexedIndirect: "(indirect,X)",
	IndirectIndexed: "(indirect),Y",
	Relative:        "relative",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// OperandSize returns the number of bytes following the opcode byte.
func (m Mode) OperandSize() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}

// IsZeroPage reports whether the operand is a single zero-page address byte.
func (m Mode) IsZeroPage() bool {
	return m == ZeroPage || m == ZeroPageX || m == ZeroPageY
}

// Absolute returns the word-addressed counterpart of a zero-page mode.
func (m Mode) Absolute() Mode {
	switch m {
	case ZeroPage:
		return Absolute
	case ZeroPageX:
		return AbsoluteX
	case ZeroPageY:
		return AbsoluteY
	}
	return m
}
