package assembler_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/asm6502/assembler"
)

func parseOne(t *testing.T, src string) assembler.Instruction {
	t.Helper()
	insts, err := assembler.Parse(src)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	if len(insts) != 1 {
		t.Fatalf("%q: expected one instruction, got %d", src, len(insts))
	}
	return insts[0]
}

func TestParseAddressing(t *testing.T) {
	tests := []struct {
		src  string
		mode assembler.Mode
		reg  assembler.Register
		addr string
	}{
		{"LSR A", assembler.Accumulator, assembler.NoRegister, ""},
		{"ORA #$B2", assembler.Immediate, assembler.NoRegister, "$B2"},
		{"CLC", assembler.Implied, assembler.NoRegister, ""},
		{"JMP $4032", assembler.Address, assembler.NoRegister, "$4032"},
		{"LDA $35", assembler.Address, assembler.NoRegister, "$35"},
		{"JMP  ($1000)", assembler.Indirect, assembler.NoRegister, "$1000"},
		{"STA $1000,Y", assembler.Indexed, assembler.RegY, "$1000"},
		{"LDA $C0,x", assembler.Indexed, assembler.RegX, "$C0"},
		{"LDA ($20,X)", assembler.IndexedIndirect, assembler.RegX, "$20"},
		{"LDA ($86),Y", assembler.IndirectIndexed, assembler.RegY, "$86"},
		{"lda (ptr),y", assembler.IndirectIndexed, assembler.RegY, "ptr"},
	}
	for _, tc := range tests {
		inst := parseOne(t, tc.src)
		a := inst.Addressing
		if a.Mode != tc.mode || a.Register != tc.reg {
			t.Errorf("%q: got %v %v, want %v %v", tc.src, a.Mode, a.Register, tc.mode, tc.reg)
			continue
		}
		got := ""
		if a.Address != nil {
			got = a.Address.String()
		}
		if got != tc.addr {
			t.Errorf("%q: address %q, want %q", tc.src, got, tc.addr)
		}
	}
}

func TestParseLabel(t *testing.T) {
	inst := parseOne(t, "TOLOWER LDY #$02")
	if inst.Label != "TOLOWER" || inst.Opcode != "LDY" {
		t.Errorf("got %+v", inst)
	}
	lit, ok := inst.Addressing.Address.(assembler.Literal)
	if !ok || lit.Value != assembler.Byte(2) {
		t.Errorf("got %#v", inst.Addressing.Address)
	}
}

func TestParseArithmetic(t *testing.T) {
	folded := []struct {
		src  string
		want assembler.Integer
	}{
		{"ORG  $0080", assembler.Word(0x80)},
		{"CMP #'Z'+1", assembler.Byte(91)},
		{"ORA #%00100000-1", assembler.Byte(31)},
		{"CMP #2*3", assembler.Byte(6)},
		{"CMP #2*3+4*5", assembler.Byte(26)},
		{"CMP #24/3", assembler.Byte(8)},
		{"CMP #-42", assembler.Byte(-42)},
		{"CMP #2*[3+4*5]", assembler.Byte(46)},
		{"CMP #10-2-3", assembler.Byte(5)},
		{"CMP #- -1", assembler.Byte(1)},
		{"LDA #LO $00AB+$CD00", assembler.Byte(0xAB)},
		{"LDA #HI $00AB+$CD00", assembler.Byte(0xCD)},
	}
	for _, tc := range folded {
		inst := parseOne(t, tc.src)
		lit, ok := inst.Addressing.Address.(assembler.Literal)
		if !ok {
			t.Errorf("%q: not folded: %v", tc.src, inst.Addressing.Address)
			continue
		}
		if lit.Value != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.src, lit.Value, tc.want)
		}
	}

	lazy := []struct {
		src  string
		want string
	}{
		{"CMP *", "*"},
		{"CMP ***", "[***]"},
		{"CMP */*", "[*/*]"},
		{"CMP -**-*", "[-**-*]"},
		{"LDA #LO *+1", "LO [*+$01]"},
		{"LDA #HI *+1", "HI [*+$01]"},
		{"LDA table+2", "[table+$02]"},
		{"LDA #1/0", "[$01/$00]"},
	}
	for _, tc := range lazy {
		inst := parseOne(t, tc.src)
		if got := inst.Addressing.Address.String(); got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestParseMultipleStatements(t *testing.T) {
	src := "\n; header\nSTART LDX #0\n\nLOOP INX\n  BNE LOOP\n  .END\n"
	insts, err := assembler.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(insts) != 4 {
		t.Fatalf("expected 4 instructions, got %d", len(insts))
	}
	lines := []int{3, 5, 6, 7}
	for i, inst := range insts {
		if inst.Line != lines[i] {
			t.Errorf("%v: line %d, want %d", inst, inst.Line, lines[i])
		}
	}
	if insts[3].Opcode != ".END" {
		t.Errorf("got %s", insts[3].Opcode)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind error
		msg  string
	}{
		{"LDA $0080,", assembler.ErrSyntax, "syntax error at EOF"},
		// Reported at the register position, where the operand stops making sense.
		{"LDA XXX,YYY,ZZZ", assembler.ErrSyntax, "syntax error at line 1, column 9: 'YYY'"},
		{"LDA $10,X,Y", assembler.ErrSyntax, "syntax error at line 1, column 10: ','"},
		{"LDK #$00", assembler.ErrUnknownKeyword, "unknown keyword at line 1, column 1: 'LDK'"},
		{"  LDK #$00", assembler.ErrUnknownKeyword, "unknown keyword at line 1, column 3: 'LDK'"},
		{"LDK LDK #$00", assembler.ErrUnknownKeyword, "unknown keyword at line 1, column 5: 'LDK'"},
		{".FOO 1", assembler.ErrUnknownKeyword, "unknown keyword at line 1, column 1: '.FOO'"},
		{"LDA X", assembler.ErrRegister, "register X can not be used as an address at line 1, column 5"},
		{"LDA $10,A", assembler.ErrRegister, "register A can not be used for indexing at line 1, column 9"},
		{"JMP ($10", assembler.ErrSyntax, "syntax error at EOF"},
		{"LDA [1+2", assembler.ErrSyntax, "syntax error at EOF"},
		{"NOP\n(", assembler.ErrSyntax, "syntax error at line 2, column 1: '('"},
	}
	for _, tc := range tests {
		_, err := assembler.Parse(tc.src)
		var pe *assembler.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected a ParseError, got %v", tc.src, err)
		}
		if !errors.Is(err, tc.kind) {
			t.Errorf("%q: wrong kind: %v", tc.src, err)
		}
		if err.Error() != tc.msg {
			t.Errorf("%q: got %q, want %q", tc.src, err.Error(), tc.msg)
		}
	}
}
