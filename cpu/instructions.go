package cpu

// Single-byte and fixed-encoding opcodes.
const (
	// Flow control
	OPBRK         = 0x00 // BRK
	OPJSR         = 0x20 // JSR abs
	OPRTI         = 0x40 // RTI
	OPJMP         = 0x4C // JMP abs
	OPRTS         = 0x60 // RTS
	OPJMPIndirect = 0x6C // JMP (ind)

	// Branches
	OPBPL = 0x10 // BPL
	OPBMI = 0x30 // BMI
	OPBVC = 0x50 // BVC
	OPBVS = 0x70 // BVS
	OPBCC = 0x90 // BCC
	OPBCS = 0xB0 // BCS
	OPBNE = 0xD0 // BNE
	OPBEQ = 0xF0 // BEQ

	// Status flags
	OPCLC = 0x18 // CLC
	OPSEC = 0x38 // SEC
	OPCLI = 0x58 // CLI
	OPSEI = 0x78 // SEI
	OPCLV = 0xB8 // CLV
	OPCLD = 0xD8 // CLD
	OPSED = 0xF8 // SED

	// Stack
	OPPHP = 0x08 // PHP
	OPPLP = 0x28 // PLP
	OPPHA = 0x48 // PHA
	OPPLA = 0x68 // PLA

	// Register transfer and increment
	OPDEY = 0x88 // DEY
	OPTXA = 0x8A // TXA
	OPTYA = 0x98 // TYA
	OPTXS = 0x9A // TXS
	OPTAY = 0xA8 // TAY
	OPTAX = 0xAA // TAX
	OPTSX = 0xBA // TSX
	OPINY = 0xC8 // INY
	OPDEX = 0xCA // DEX
	OPINX = 0xE8 // INX
	OPNOP = 0xEA // NOP
)

// group1 lays out the eight-mode ALU family: imm, zp, zp,X, abs, abs,X, abs,Y, (zp,X), (zp),Y.
func group1(base byte) map[Mode]byte {
	return map[Mode]byte{
		Immediate:       base | 0x09,
		ZeroPage:        base | 0x05,
		ZeroPageX:       base | 0x15,
		Absolute:        base | 0x0D,
		AbsoluteX:       base | 0x1D,
		AbsoluteY:       base | 0x19,
		IndexedIndirect: base | 0x01,
		IndirectIndexed: base | 0x11,
	}
}

// shift lays out ASL/LSR/ROL/ROR.
func shift(base byte) map[Mode]byte {
	return map[Mode]byte{
		Accumulator: base | 0x0A,
		ZeroPage:    base | 0x06,
		ZeroPageX:   base | 0x16,
		Absolute:    base | 0x0E,
		AbsoluteX:   base | 0x1E,
	}
}

func implied(op byte) map[Mode]byte {
	return map[Mode]byte{Implied: op}
}

func relative(op byte) map[Mode]byte {
	return map[Mode]byte{Relative: op}
}

// Opcodes maps each official NMOS mnemonic to its encodings per concrete mode.
var Opcodes = map[string]map[Mode]byte{
	"ADC": group1(0x60),
	"AND": group1(0x20),
	"ASL": shift(0x00),
	"BCC": relative(OPBCC),
	"BCS": relative(OPBCS),
	"BEQ": relative(OPBEQ),
	"BIT": {ZeroPage: 0x24, Absolute: 0x2C},
	"BMI": relative(OPBMI),
	"BNE": relative(OPBNE),
	"BPL": relative(OPBPL),
	"BRK": implied(OPBRK),
	"BVC": relative(OPBVC),
	"BVS": relative(OPBVS),
	"CLC": implied(OPCLC),
	"CLD": implied(OPCLD),
	"CLI": implied(OPCLI),
	"CLV": implied(OPCLV),
	"CMP": group1(0xC0),
	"CPX": {Immediate: 0xE0, ZeroPage: 0xE4, Absolute: 0xEC},
	"CPY": {Immediate: 0xC0, ZeroPage: 0xC4, Absolute: 0xCC},
	"DEC": {ZeroPage: 0xC6, ZeroPageX: 0xD6, Absolute: 0xCE, AbsoluteX: 0xDE},
	"DEX": implied(OPDEX),
	"DEY": implied(OPDEY),
	"EOR": group1(0x40),
	"INC": {ZeroPage: 0xE6, ZeroPageX: 0xF6, Absolute: 0xEE, AbsoluteX: 0xFE},
	"INX": implied(OPINX),
	"INY": implied(OPINY),
	"JMP": {Absolute: OPJMP, Indirect: OPJMPIndirect},
	"JSR": {Absolute: OPJSR},
	"LDA": group1(0xA0),
	"LDX": {Immediate: 0xA2, ZeroPage: 0xA6, ZeroPageY: 0xB6, Absolute: 0xAE, AbsoluteY: 0xBE},
	"LDY": {Immediate: 0xA0, ZeroPage: 0xA4, ZeroPageX: 0xB4, Absolute: 0xAC, AbsoluteX: 0xBC},
	"LSR": shift(0x40),
	"NOP": implied(OPNOP),
	"ORA": group1(0x00),
	"PHA": implied(OPPHA),
	"PHP": implied(OPPHP),
	"PLA": implied(OPPLA),
	"PLP": implied(OPPLP),
	"ROL": shift(0x20),
	"ROR": shift(0x60),
	"RTI": implied(OPRTI),
	"RTS": implied(OPRTS),
	"SBC": group1(0xE0),
	"SEC": implied(OPSEC),
	"SED": implied(OPSED),
	"SEI": implied(OPSEI),
	"STA": {ZeroPage: 0x85, ZeroPageX: 0x95, Absolute: 0x8D, AbsoluteX: 0x9D, AbsoluteY: 0x99, IndexedIndirect: 0x81, IndirectIndexed: 0x91},
	"STX": {ZeroPage: 0x86, ZeroPageY: 0x96, Absolute: 0x8E},
	"STY": {ZeroPage: 0x84, ZeroPageX: 0x94, Absolute: 0x8C},
	"TAX": implied(OPTAX),
	"TAY": implied(OPTAY),
	"TSX": implied(OPTSX),
	"TXA": implied(OPTXA),
	"TXS": implied(OPTXS),
	"TYA": implied(OPTYA),
}

// IsBranch reports whether the mnemonic is one of the eight conditional branches.
func IsBranch(mnemonic string) bool {
	_, ok := Opcodes[mnemonic][Relative]
	return ok
}
