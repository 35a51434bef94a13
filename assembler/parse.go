package assembler

import (
	"fmt"
)

// parser is a recursive descent parser with one token of lookahead.
type parser struct {
	lex *lexer
	tok Token
}

// Parse converts source text into instructions.
func Parse(src string) ([]Instruction, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var insts []Instruction
	for {
		switch p.tok.Kind {
		case TokenEOF:
			return insts, nil
		case TokenNewline:
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}

		inst, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		insts = append(insts, inst)

		if p.tok.Kind != TokenNewline && p.tok.Kind != TokenEOF {
			return nil, p.syntaxError()
		}
	}
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) syntaxError() error {
	if p.tok.Kind == TokenEOF {
		return &ParseError{EOF: true, Msg: "syntax error", Err: ErrSyntax}
	}
	e := &ParseError{Line: p.tok.Line, Column: p.tok.Column, Msg: "syntax error", Err: ErrSyntax}
	if p.tok.Kind != TokenNewline {
		e.Token = p.tok.Text
	}
	return e
}

func unknownKeyword(tok Token) error {
	return &ParseError{Line: tok.Line, Column: tok.Column, Msg: "unknown keyword", Token: tok.Text, Err: ErrUnknownKeyword}
}

func registerError(tok Token, format string) error {
	return &ParseError{
		Line:   tok.Line,
		Column: tok.Column,
		Msg:    fmt.Sprintf(format, tok.Text),
		Err:    ErrRegister,
	}
}

// parseStatement reads `[label] KEYWORD operand`.
func (p *parser) parseStatement() (Instruction, error) {
	inst := Instruction{Line: p.tok.Line}

	if p.tok.Kind == TokenIdent {
		label := p.tok
		if err := p.advance(); err != nil {
			return inst, err
		}
		switch p.tok.Kind {
		case TokenKeyword:
			inst.Label = label.Text
		case TokenIdent:
			// Two names in a row: the second should have been a keyword.
			return inst, unknownKeyword(p.tok)
		default:
			return inst, unknownKeyword(label)
		}
	}

	if p.tok.Kind != TokenKeyword {
		return inst, p.syntaxError()
	}
	kw := p.tok
	if _, ok := opcodes[kw.Text]; !ok {
		return inst, unknownKeyword(kw)
	}
	inst.Opcode = kw.Text
	if err := p.advance(); err != nil {
		return inst, err
	}

	var err error
	inst.Addressing, err = p.parseOperand()
	return inst, err
}

func (p *parser) parseOperand() (Addressing, error) {
	switch p.tok.Kind {
	case TokenNewline, TokenEOF:
		return Addressing{Mode: Implied}, nil

	case TokenRegister:
		if p.tok.Text != "A" {
			return Addressing{}, registerError(p.tok, "register %s can not be used as an address")
		}
		return Addressing{Mode: Accumulator}, p.advance()

	case TokenHash, TokenLo, TokenHi:
		kind := p.tok.Kind
		if err := p.advance(); err != nil {
			return Addressing{}, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return Addressing{}, err
		}
		switch kind {
		case TokenLo:
			e = newLowByte(e)
		case TokenHi:
			e = newHighByte(e)
		}
		return Addressing{Mode: Immediate, Address: e}, nil

	case TokenLParen:
		return p.parseIndirect()
	}

	e, err := p.parseExpr()
	if err != nil {
		return Addressing{}, err
	}
	if p.tok.Kind != TokenComma {
		return Addressing{Mode: Address, Address: e}, nil
	}
	if err := p.advance(); err != nil {
		return Addressing{}, err
	}
	reg, err := p.parseIndexRegister()
	if err != nil {
		return Addressing{}, err
	}
	return Addressing{Mode: Indexed, Address: e, Register: reg}, nil
}

// parseIndirect handles (expr), (expr,R) and (expr),R. Which index register
// each form accepts is checked by the assembler.
func (p *parser) parseIndirect() (Addressing, error) {
	if err := p.advance(); err != nil {
		return Addressing{}, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return Addressing{}, err
	}

	switch p.tok.Kind {
	case TokenComma:
		if err := p.advance(); err != nil {
			return Addressing{}, err
		}
		reg, err := p.parseIndexRegister()
		if err != nil {
			return Addressing{}, err
		}
		if p.tok.Kind != TokenRParen {
			return Addressing{}, p.syntaxError()
		}
		return Addressing{Mode: IndexedIndirect, Address: e, Register: reg}, p.advance()

	case TokenRParen:
		if err := p.advance(); err != nil {
			return Addressing{}, err
		}
		if p.tok.Kind != TokenComma {
			return Addressing{Mode: Indirect, Address: e}, nil
		}
		if err := p.advance(); err != nil {
			return Addressing{}, err
		}
		reg, err := p.parseIndexRegister()
		if err != nil {
			return Addressing{}, err
		}
		return Addressing{Mode: IndirectIndexed, Address: e, Register: reg}, nil
	}
	return Addressing{}, p.syntaxError()
}

func (p *parser) parseIndexRegister() (Register, error) {
	if p.tok.Kind != TokenRegister {
		return NoRegister, p.syntaxError()
	}
	if p.tok.Text == "A" {
		return NoRegister, registerError(p.tok, "register %s can not be used for indexing")
	}
	reg := registerFromName(p.tok.Text)
	return reg, p.advance()
}

// parseExpr: term (('+'|'-') term)*
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenPlus || p.tok.Kind == TokenMinus {
		op := p.tok.Text[0]
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = newBinary(op, left, right)
	}
	return left, nil
}

// parseTerm: unary (('*'|'/') unary)*
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenStar || p.tok.Kind == TokenSlash {
		op := p.tok.Text[0]
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = newBinary(op, left, right)
	}
	return left, nil
}

// parseUnary: '-' unary | primary
func (p *parser) parseUnary() (Expr, error) {
	if p.tok.Kind != TokenMinus {
		return p.parsePrimary()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return newNegate(x), nil
}

// parsePrimary: NUMBER | IDENT | '*' | '[' expr ']'
func (p *parser) parsePrimary() (Expr, error) {
	tok := p.tok
	switch tok.Kind {
	case TokenNumber:
		return Literal{Value: tok.Number}, p.advance()

	case TokenIdent:
		return LabelRef{Name: tok.Text}, p.advance()

	case TokenStar:
		// In primary position '*' is the current address, not multiplication.
		return Current{}, p.advance()

	case TokenLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != TokenRBracket {
			return nil, p.syntaxError()
		}
		return e, p.advance()
	}
	return nil, p.syntaxError()
}
