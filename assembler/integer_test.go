package assembler_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Urethramancer/asm6502/assembler"
)

func TestIntegerWidth(t *testing.T) {
	must := func(v assembler.Integer, err error) assembler.Integer {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	b := assembler.Byte
	w := assembler.Word
	tests := []struct {
		name string
		got  assembler.Integer
		want assembler.Integer
	}{
		{"AddBytes", must(b(0x10).Add(b(0x20))), b(0x30)},
		{"AddOverflow", must(b(0xF0).Add(b(0x20))), w(0x110)},
		{"AddWord", must(w(0x01).Add(b(0x01))), w(0x02)},
		{"AddNegativeOverflow", must(b(-0xF0).Add(b(-0x20))), w(-0x110)},
		{"SubKeepsByte", must(b(0x10).Sub(b(0x20))), b(-0x10)},
		{"SubWord", must(w(0x1000).Sub(b(0x01))), w(0x0FFF)},
		{"MulBytes", must(b(2).Mul(b(3))), b(6)},
		{"MulOverflow", must(b(0x10).Mul(b(0x10))), w(0x100)},
		{"Neg", must(b(42).Neg()), b(-42)},
		{"NegWord", must(w(1).Neg()), w(-1)},
		{"Low", w(0xCDAB).Low(), b(0xAB)},
		{"High", w(0xCDAB).High(), b(0xCD)},
		{"HighNegative", b(-1).High(), b(0xFF)},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("[%s] got %+v, want %+v", tc.name, tc.got, tc.want)
		}
	}
}

func TestIntegerOverflow(t *testing.T) {
	w := assembler.Word
	big := w(math.MaxInt64)
	small := w(math.MinInt64)
	tests := []struct {
		name string
		op   func() (assembler.Integer, error)
	}{
		{"Add", func() (assembler.Integer, error) { return big.Add(w(1)) }},
		{"AddNegative", func() (assembler.Integer, error) { return small.Add(w(-1)) }},
		{"Sub", func() (assembler.Integer, error) { return small.Sub(w(1)) }},
		{"SubNegative", func() (assembler.Integer, error) { return big.Sub(w(-1)) }},
		{"Mul", func() (assembler.Integer, error) { return w(0x100000000).Mul(w(0x100000000)) }},
		{"MulMinusOne", func() (assembler.Integer, error) { return w(-1).Mul(small) }},
		{"Neg", func() (assembler.Integer, error) { return small.Neg() }},
		{"Div", func() (assembler.Integer, error) { return small.Div(w(-1)) }},
	}
	for _, tc := range tests {
		if _, err := tc.op(); !errors.Is(err, assembler.ErrValueTooLarge) {
			t.Errorf("[%s] expected ErrValueTooLarge, got %v", tc.name, err)
		}
	}

	if got, err := big.Add(w(-1)); err != nil || got.Value != math.MaxInt64-1 {
		t.Errorf("mixed signs never overflow: got %+v, %v", got, err)
	}
	if got := small.String(); got != "-$8000000000000000" {
		t.Errorf("got %s", got)
	}
}

func TestIntegerDiv(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{24, 3, 8},
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{-8, 2, -4},
	}
	for _, tc := range tests {
		got, err := assembler.Byte(tc.a).Div(assembler.Byte(tc.b))
		if err != nil {
			t.Fatalf("%d/%d: %v", tc.a, tc.b, err)
		}
		if got.Value != tc.want || got.IsWord {
			t.Errorf("%d/%d: got %+v, want %d", tc.a, tc.b, got, tc.want)
		}
	}

	got, err := assembler.Word(0x1000).Div(assembler.Byte(0x10))
	if err != nil || !got.IsWord || got.Value != 0x100 {
		t.Errorf("word division: got %+v, %v", got, err)
	}

	if _, err := assembler.Byte(1).Div(assembler.Byte(0)); !errors.Is(err, assembler.ErrDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		src  string
		want assembler.Integer
	}{
		{"$FF", assembler.Byte(0xFF)},
		{"$0080", assembler.Word(0x80)},
		{"$b2", assembler.Byte(0xB2)},
		{"0x1234", assembler.Word(0x1234)},
		{"%00100000", assembler.Byte(0x20)},
		{"%100000000", assembler.Word(0x100)},
		{"255", assembler.Byte(255)},
		{"256", assembler.Word(256)},
		{"'Z'", assembler.Byte('Z')},
	}
	for _, tc := range tests {
		got, err := assembler.ParseNumber(tc.src)
		if err != nil {
			t.Fatalf("%s: %v", tc.src, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.src, got, tc.want)
		}
	}

	for _, bad := range []string{"", "$", "%2", "12a", "$-1"} {
		if _, err := assembler.ParseNumber(bad); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}

func TestIntegerString(t *testing.T) {
	if s := assembler.Word(0x80).String(); s != "$0080" {
		t.Errorf("got %s", s)
	}
	if s := assembler.Byte(-16).String(); s != "-$10" {
		t.Errorf("got %s", s)
	}
}
