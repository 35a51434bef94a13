package cpu

import (
	"sort"
)

// Instruction describes one opcode byte.
type Instruction struct {
	Mnemonic string
	Mode     Mode
	Opcode   byte
}

// Size returns the encoded length including the opcode byte.
func (i Instruction) Size() int {
	return 1 + i.Mode.OperandSize()
}

var decodeTable [256]*Instruction

func init() {
	names := make([]string, 0, len(Opcodes))
	for name := range Opcodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for mode, op := range Opcodes[name] {
			decodeTable[op] = &Instruction{Mnemonic: name, Mode: mode, Opcode: op}
		}
	}
}

// Lookup decodes an opcode byte. Undocumented opcodes report false.
func Lookup(op byte) (Instruction, bool) {
	inst := decodeTable[op]
	if inst == nil {
		return Instruction{}, false
	}
	return *inst, true
}

// Mnemonics returns all known mnemonics in alphabetical order.
func Mnemonics() []string {
	names := make([]string, 0, len(Opcodes))
	for name := range Opcodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
