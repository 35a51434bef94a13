package assembler_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/asm6502/assembler"
)

func kinds(t *testing.T, src string) []assembler.TokenKind {
	t.Helper()
	tokens, err := assembler.Tokenize(src)
	if err != nil {
		t.Fatalf("failed to tokenize %q: %v", src, err)
	}
	out := make([]assembler.TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func matchKinds(t *testing.T, src string, want ...assembler.TokenKind) {
	t.Helper()
	got := kinds(t, src)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestLexerTokens(t *testing.T) {
	matchKinds(t, "LOOP lda ($20),y ; comment",
		assembler.TokenIdent, assembler.TokenKeyword, assembler.TokenLParen, assembler.TokenNumber,
		assembler.TokenRParen, assembler.TokenComma, assembler.TokenRegister, assembler.TokenEOF)

	matchKinds(t, ".org $1000\n\n\n  ; only a comment\n.word *+[2*3]",
		assembler.TokenKeyword, assembler.TokenNumber, assembler.TokenNewline,
		assembler.TokenKeyword, assembler.TokenStar, assembler.TokenPlus, assembler.TokenLBracket,
		assembler.TokenNumber, assembler.TokenStar, assembler.TokenNumber, assembler.TokenRBracket,
		assembler.TokenEOF)

	matchKinds(t, "LDA #LO VALUE\r\nLDA #HI VALUE",
		assembler.TokenKeyword, assembler.TokenLo, assembler.TokenIdent, assembler.TokenNewline,
		assembler.TokenKeyword, assembler.TokenHi, assembler.TokenIdent, assembler.TokenEOF)

	// #LO only counts when it is not the start of a longer name.
	matchKinds(t, "LDA #LOW_VALUE",
		assembler.TokenKeyword, assembler.TokenHash, assembler.TokenIdent, assembler.TokenEOF)
}

func TestLexerValues(t *testing.T) {
	tokens, err := assembler.Tokenize("sta $1000,x\nLDA 'A'")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Text != "STA" || tokens[0].Kind != assembler.TokenKeyword {
		t.Errorf("mnemonic not normalised: %+v", tokens[0])
	}
	if tokens[1].Number != assembler.Word(0x1000) {
		t.Errorf("got %+v", tokens[1].Number)
	}
	if tokens[3].Text != "X" {
		t.Errorf("register not normalised: %+v", tokens[3])
	}
	if tokens[4].Kind != assembler.TokenNewline {
		t.Fatalf("expected newline, got %v", tokens[4].Kind)
	}
	if tokens[6].Number != assembler.Byte('A') || tokens[6].Line != 2 || tokens[6].Column != 5 {
		t.Errorf("got %+v", tokens[6])
	}
}

func TestLexerLabelsKeepCase(t *testing.T) {
	tokens, err := assembler.Tokenize("Loop NOP")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != assembler.TokenIdent || tokens[0].Text != "Loop" {
		t.Errorf("got %+v", tokens[0])
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	tests := []struct {
		src, msg string
	}{
		{"ORG  $@0080", "illegal character '$' at line 1, column 6"},
		{"ORG  $0080\nORG $@0800", "illegal character '$' at line 2, column 5"},
		{"LDA @", "illegal character '@' at line 1, column 5"},
		{"LDA ''", "illegal character ''' at line 1, column 5"},
	}
	for _, tc := range tests {
		_, err := assembler.Tokenize(tc.src)
		var pe *assembler.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected a ParseError, got %v", tc.src, err)
		}
		if !errors.Is(err, assembler.ErrIllegalCharacter) {
			t.Errorf("%q: wrong kind: %v", tc.src, err)
		}
		if err.Error() != tc.msg {
			t.Errorf("%q: got %q, want %q", tc.src, err.Error(), tc.msg)
		}
	}
}
