package assembler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Integer is a value tagged with the width it needs when encoded.
type Integer struct {
	// IsWord is set when the value needs 16 bits.
	IsWord bool
	Value  int64
}

// Byte returns a byte-width Integer.
func Byte(v int64) Integer {
	return Integer{Value: v}
}

// Word returns a word-width Integer.
func Word(v int64) Integer {
	return Integer{IsWord: true, Value: v}
}

// addressValue tags a resolved address; anything above the zero page is a word.
func addressValue(v int) Integer {
	return Integer{IsWord: v > 0xFF, Value: int64(v)}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func overflow(op string, a, b Integer) error {
	return fmt.Errorf("%w: %v %s %v overflows", ErrValueTooLarge, a, op, b)
}

// Add returns a+b, widening when the sum leaves the byte range.
func (a Integer) Add(b Integer) (Integer, error) {
	v := a.Value + b.Value
	if (a.Value >= 0) == (b.Value >= 0) && (v >= 0) != (a.Value >= 0) {
		return Integer{}, overflow("+", a, b)
	}
	return Integer{IsWord: a.IsWord || b.IsWord || abs(v) > 0xFF, Value: v}, nil
}

// Sub returns a-b.
func (a Integer) Sub(b Integer) (Integer, error) {
	v := a.Value - b.Value
	if (a.Value >= 0) != (b.Value >= 0) && (v >= 0) != (a.Value >= 0) {
		return Integer{}, overflow("-", a, b)
	}
	return Integer{IsWord: a.IsWord || b.IsWord, Value: v}, nil
}

// Mul returns a*b, widening when the product leaves the byte range.
func (a Integer) Mul(b Integer) (Integer, error) {
	v := a.Value * b.Value
	if a.Value != 0 && (v/a.Value != b.Value || (a.Value == -1 && b.Value == math.MinInt64)) {
		return Integer{}, overflow("*", a, b)
	}
	return Integer{IsWord: a.IsWord || b.IsWord || abs(v) > 0xFF, Value: v}, nil
}

// Div returns a/b rounded towards negative infinity.
func (a Integer) Div(b Integer) (Integer, error) {
	if b.Value == 0 {
		return Integer{}, ErrDivisionByZero
	}
	if a.Value == math.MinInt64 && b.Value == -1 {
		return Integer{}, overflow("/", a, b)
	}
	q := a.Value / b.Value
	if a.Value%b.Value != 0 && (a.Value < 0) != (b.Value < 0) {
		q--
	}
	return Integer{IsWord: a.IsWord || b.IsWord, Value: q}, nil
}

// Neg returns -a with the same width.
func (a Integer) Neg() (Integer, error) {
	if a.Value == math.MinInt64 {
		return Integer{}, fmt.Errorf("%w: -%v overflows", ErrValueTooLarge, a)
	}
	return Integer{IsWord: a.IsWord, Value: -a.Value}, nil
}

// Low returns bits 0-7 as a byte.
func (a Integer) Low() Integer {
	return Integer{Value: a.Value & 0xFF}
}

// High returns bits 8-15 as a byte.
func (a Integer) High() Integer {
	return Integer{Value: (a.Value >> 8) & 0xFF}
}

func (a Integer) String() string {
	v := uint64(a.Value)
	sign := ""
	if a.Value < 0 {
		sign = "-"
		v = -v
	}
	if a.IsWord {
		return fmt.Sprintf("%s$%04X", sign, v)
	}
	return fmt.Sprintf("%s$%02X", sign, v)
}

// ParseNumber parses a numeral the way the assembler reads literals:
// $hex, %binary, 'c' and decimal. A 0x prefix is accepted as hex as well.
func ParseNumber(s string) (Integer, error) {
	s = strings.TrimSpace(s)

	// Character literal ('A')
	if len(s) == 3 && s[0] == '\'' && s[2] == '\'' {
		return Byte(int64(s[1])), nil
	}

	digits := s
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		digits = s[1:]
		base = 16
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		digits = s[2:]
		base = 16
	case strings.HasPrefix(s, "%"):
		digits = s[1:]
		base = 2
	}

	val, err := strconv.ParseInt(digits, base, 64)
	if err != nil || digits == "" || digits[0] == '-' || digits[0] == '+' {
		return Integer{}, fmt.Errorf("invalid number format: %s", s)
	}

	switch base {
	case 16:
		return Integer{IsWord: len(digits) > 2, Value: val}, nil
	case 2:
		return Integer{IsWord: len(digits) > 8, Value: val}, nil
	}
	return Integer{IsWord: val > 0xFF, Value: val}, nil
}
