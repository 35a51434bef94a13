package assembler

import (
	"fmt"

	"github.com/Urethramancer/asm6502/cpu"
)

func isZeroPage(v Integer) bool {
	return !v.IsWord && v.Value >= 0 && v.Value <= 0xFF
}

// dataByte accepts signed and unsigned byte values and stores them in two's complement.
func dataByte(v Integer) (byte, error) {
	if v.Value < -128 || v.Value > 0xFF {
		return 0, fmt.Errorf("%w: %v does not fit in a byte", ErrValueTooLarge, v)
	}
	return byte(v.Value), nil
}

// dataWord accepts signed and unsigned 16-bit values.
func dataWord(v Integer) ([]byte, error) {
	if v.Value < -32768 || v.Value > 0xFFFF {
		return nil, fmt.Errorf("%w: %v does not fit in a word", ErrValueTooLarge, v)
	}
	return cpu.WordBytes(uint16(v.Value)), nil
}

// addressWord encodes an absolute address.
func addressWord(v Integer) ([]byte, error) {
	if v.Value < 0 || v.Value > 0xFFFF {
		return nil, fmt.Errorf("%w: %v is not a 16-bit address", ErrValueTooLarge, v)
	}
	return cpu.WordBytes(uint16(v.Value)), nil
}
