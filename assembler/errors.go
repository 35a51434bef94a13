package assembler

import (
	"errors"
	"fmt"
	"strings"
)

// Lexer and parser failures.
var (
	ErrIllegalCharacter = errors.New("illegal character")
	ErrSyntax           = errors.New("syntax error")
	ErrUnknownKeyword   = errors.New("unknown keyword")
	ErrRegister         = errors.New("register can not be used here")
)

// Encoder failures.
var (
	ErrAddressingNotAllowed = errors.New("addressing not allowed for opcode")
	ErrRegisterNotAllowed   = errors.New("register not allowed")
	ErrAbsoluteIndexed      = errors.New("absolute indexed addressing not allowed")
	ErrValueTooLarge        = errors.New("value too large")
	ErrUndefinedLabel       = errors.New("undefined label")
	ErrDuplicateLabel       = errors.New("duplicate label")
	ErrOutOfMemory          = errors.New("out of memory")
	ErrBranchOutOfRange     = errors.New("branch out of range")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrEntryOverlap         = errors.New("entry vector overlaps code")
)

// ParseError is returned by the lexer and parser.
type ParseError struct {
	Line   int
	Column int
	// EOF is set when the input ended unexpectedly; Line and Column are then meaningless.
	EOF bool
	// Msg is the human readable description.
	Msg string
	// Token is the offending token text, if any.
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Msg)
	if e.EOF {
		sb.WriteString(" at EOF")
	} else {
		fmt.Fprintf(&sb, " at line %d, column %d", e.Line, e.Column)
	}
	if e.Token != "" {
		fmt.Fprintf(&sb, ": '%s'", e.Token)
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AssembleError is returned by the two passes of the encoder.
type AssembleError struct {
	Line int
	Err  error
}

func (e *AssembleError) Error() string {
	return fmt.Sprintf("%v at line %d", e.Err, e.Line)
}

func (e *AssembleError) Unwrap() error {
	return e.Err
}
