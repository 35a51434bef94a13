package cpu

import (
	"encoding/binary"
)

// WordBytes converts a 16-bit word to its little-endian byte pair.
func WordBytes(w uint16) []byte {
	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, w)
	return out
}

// BytesWord interprets the first two bytes as a little-endian word.
// A single byte is padded with a zero high byte.
func BytesWord(b []byte) uint16 {
	if len(b) < 2 {
		b = append([]byte{}, b...)
		b = append(b, 0, 0)
	}
	return binary.LittleEndian.Uint16(b)
}
