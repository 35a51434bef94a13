package assembler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Urethramancer/asm6502/cpu"
)

// TokenKind identifies a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNewline
	TokenKeyword
	TokenRegister
	TokenIdent
	TokenNumber
	TokenHash
	TokenLo
	TokenHi
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
)

var punctuation = map[byte]TokenKind{
	'(': TokenLParen,
	')': TokenRParen,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
}

// Token is one lexical element with its source position.
type Token struct {
	Kind TokenKind
	// Text is the source text; keywords and registers are upper-cased.
	Text   string
	Number Integer
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "newline"
	}
	return t.Text
}

// IsKeyword reports whether s is a mnemonic or the ORG pseudo-op.
// Names starting with a dot are always lexed as keywords.
func IsKeyword(s string) bool {
	s = strings.ToUpper(s)
	if s == "ORG" {
		return true
	}
	_, ok := cpu.Opcodes[s]
	return ok
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

// lexer scans source text one token at a time.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) peek(off int) byte {
	if l.pos+off < len(l.src) {
		return l.src[l.pos+off]
	}
	return 0
}

// advance moves within the current line.
func (l *lexer) advance(n int) {
	l.pos += n
	l.col += n
}

// skipBlank skips spaces, tabs and comments, stopping at a line break.
func (l *lexer) skipBlank() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; c {
		case ' ', '\t':
			l.advance(1)
		case ';':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
		default:
			return
		}
	}
}

func (l *lexer) illegal() error {
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return &ParseError{
		Line:   l.line,
		Column: l.col,
		Msg:    fmt.Sprintf("illegal character '%c'", r),
		Err:    ErrIllegalCharacter,
	}
}

// span consumes bytes matching ok and returns them.
func (l *lexer) span(ok func(byte) bool) string {
	start := l.pos
	for l.pos < len(l.src) && ok(l.src[l.pos]) {
		l.advance(1)
	}
	return l.src[start:l.pos]
}

func (l *lexer) next() (Token, error) {
	l.skipBlank()
	tok := Token{Line: l.line, Column: l.col}
	if l.pos >= len(l.src) {
		tok.Kind = TokenEOF
		return tok, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '\n':
		// Blank lines and comment-only lines collapse into one break.
		for l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
			l.line++
			l.col = 1
			l.skipBlank()
		}
		tok.Kind = TokenNewline
		tok.Text = "\n"
		return tok, nil

	case isIdentStart(c):
		tok.Text = l.span(isIdentChar)
		upper := strings.ToUpper(tok.Text)
		switch {
		case upper == "A" || upper == "X" || upper == "Y":
			tok.Kind = TokenRegister
			tok.Text = upper
		case IsKeyword(upper):
			tok.Kind = TokenKeyword
			tok.Text = upper
		default:
			tok.Kind = TokenIdent
		}
		return tok, nil

	case c == '.':
		if !isIdentStart(l.peek(1)) {
			return tok, l.illegal()
		}
		l.advance(1)
		tok.Kind = TokenKeyword
		tok.Text = "." + strings.ToUpper(l.span(isIdentChar))
		return tok, nil

	case isDigit(c):
		return l.number(tok, "", isDigit)

	case c == '$':
		if !isHexDigit(l.peek(1)) {
			return tok, l.illegal()
		}
		l.advance(1)
		return l.number(tok, "$", isHexDigit)

	case c == '%':
		if !isBinDigit(l.peek(1)) {
			return tok, l.illegal()
		}
		l.advance(1)
		return l.number(tok, "%", isBinDigit)

	case c == '\'':
		ch := l.peek(1)
		if ch == 0 || ch == '\'' || ch == '\n' || l.peek(2) != '\'' {
			return tok, l.illegal()
		}
		tok.Kind = TokenNumber
		tok.Text = l.src[l.pos : l.pos+3]
		tok.Number = Byte(int64(ch))
		l.advance(3)
		return tok, nil

	case c == '#':
		l.advance(1)
		tok.Kind = TokenHash
		tok.Text = "#"
		word := strings.ToUpper(l.src[l.pos:min(l.pos+2, len(l.src))])
		if (word == "LO" || word == "HI") && !isIdentChar(l.peek(2)) {
			l.advance(2)
			tok.Text = "#" + word
			tok.Kind = TokenLo
			if word == "HI" {
				tok.Kind = TokenHi
			}
		}
		return tok, nil
	}

	if kind, ok := punctuation[c]; ok {
		l.advance(1)
		tok.Kind = kind
		tok.Text = string(c)
		return tok, nil
	}
	return tok, l.illegal()
}

func (l *lexer) number(tok Token, prefix string, digit func(byte) bool) (Token, error) {
	tok.Kind = TokenNumber
	tok.Text = prefix + l.span(digit)
	n, err := ParseNumber(tok.Text)
	if err != nil {
		return tok, &ParseError{Line: tok.Line, Column: tok.Column, Msg: "invalid number", Token: tok.Text, Err: ErrSyntax}
	}
	tok.Number = n
	return tok, nil
}

// Tokenize scans the whole source. The parser pulls tokens lazily instead;
// this is for tools that want the raw stream.
func Tokenize(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
