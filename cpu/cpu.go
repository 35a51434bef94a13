package cpu

import (
	"fmt"
)

const (
	// MemorySize is the full 16-bit address space.
	MemorySize = 0x10000
	// ResetVector is where the CPU fetches its start address after reset.
	ResetVector = 0xFFFC
)

// Memory is a flat memory image that assembled code is loaded into.
type Memory struct {
	// Mem is the backing store.
	Mem []byte

	lo, hi int
	used   bool
}

// NewMemory creates a zeroed image of the given size.
func NewMemory(memsize int) *Memory {
	return &Memory{Mem: make([]byte, memsize)}
}

// LoadCode copies code to the specified address.
func (m *Memory) LoadCode(addr int, code []byte) error {
	if addr < 0 || addr+len(code) > len(m.Mem) {
		return fmt.Errorf("code at $%04X+%d does not fit in %d bytes of memory", addr, len(code), len(m.Mem))
	}
	if len(code) == 0 {
		return nil
	}

	copy(m.Mem[addr:], code)
	end := addr + len(code)
	if !m.used || addr < m.lo {
		m.lo = addr
	}
	if !m.used || end > m.hi {
		m.hi = end
	}
	m.used = true
	return nil
}

// ReadU16 reads a little-endian word.
func (m *Memory) ReadU16(addr int) uint16 {
	return BytesWord(m.Mem[addr : addr+2])
}

// Span returns the lowest and one past the highest address written so far.
func (m *Memory) Span() (int, int) {
	return m.lo, m.hi
}

// Image returns the written part of memory, gaps included.
func (m *Memory) Image() []byte {
	return m.Mem[m.lo:m.hi]
}
