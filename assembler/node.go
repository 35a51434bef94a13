package assembler

import (
	"strings"
)

// Mode is the syntactic addressing form of an operand.
type Mode int

const (
	// Implied has no operand: CLC
	Implied Mode = iota
	// Accumulator is the bare A register: LSR A
	Accumulator
	// Immediate: #expr
	Immediate
	// Address is zero page or absolute, decided when the value is known: expr
	Address
	// Indirect: (expr)
	Indirect
	// Indexed: expr,X or expr,Y
	Indexed
	// IndexedIndirect: (expr,X)
	IndexedIndirect
	// IndirectIndexed: (expr),Y
	IndirectIndexed
	// Relative is a raw branch displacement. The parser never produces it.
	Relative
)

var modeNames = [...]string{
	Implied:         "implied",
	Accumulator:     "accumulator",
	Immediate:       "immediate",
	Address:         "address",
	Indirect:        "indirect",
	Indexed:         "indexed",
	IndexedIndirect: "indexed indirect",
	IndirectIndexed: "indirect indexed",
	Relative:        "relative",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Register names an index or accumulator register in an operand.
type Register int

const (
	NoRegister Register = iota
	RegA
	RegX
	RegY
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegX:
		return "X"
	case RegY:
		return "Y"
	}
	return ""
}

func registerFromName(s string) Register {
	switch strings.ToUpper(s) {
	case "A":
		return RegA
	case "X":
		return RegX
	case "Y":
		return RegY
	}
	return NoRegister
}

// Addressing is an operand as written.
type Addressing struct {
	Mode     Mode
	Address  Expr
	Register Register
}

func (a Addressing) String() string {
	switch a.Mode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return "#" + a.Address.String()
	case Indirect:
		return "(" + a.Address.String() + ")"
	case Indexed:
		return a.Address.String() + "," + a.Register.String()
	case IndexedIndirect:
		return "(" + a.Address.String() + "," + a.Register.String() + ")"
	case IndirectIndexed:
		return "(" + a.Address.String() + ")," + a.Register.String()
	}
	if a.Address == nil {
		return ""
	}
	return a.Address.String()
}

// Instruction is one parsed statement.
type Instruction struct {
	Label      string
	Opcode     string
	Addressing Addressing
	Line       int
}

func (inst Instruction) String() string {
	var sb strings.Builder
	if inst.Label != "" {
		sb.WriteString(inst.Label)
		sb.WriteByte(' ')
	}
	sb.WriteString(inst.Opcode)
	if op := inst.Addressing.String(); op != "" {
		sb.WriteByte(' ')
		sb.WriteString(op)
	}
	return sb.String()
}
