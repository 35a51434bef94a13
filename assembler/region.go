package assembler

import (
	"fmt"
	"strings"
)

// Region is a contiguous run of code starting at Offset.
type Region struct {
	Offset int
	Code   []byte
}

// End returns the offset one past the last byte.
func (r Region) End() int {
	return r.Offset + len(r.Code)
}

func (r Region) String() string {
	return fmt.Sprintf("$%04X: % X", r.Offset, r.Code)
}

// write appends code at the current offset, opening a new region when the
// offset does not continue the last one.
func (asm *Assembler) write(code []byte) {
	if len(code) == 0 {
		return
	}
	n := len(asm.regions)
	if n == 0 || asm.regions[n-1].End() != asm.offset {
		asm.regions = append(asm.regions, Region{Offset: asm.offset})
		n++
	}
	asm.regions[n-1].Code = append(asm.regions[n-1].Code, code...)
}

// pruneRegions drops trailing empty regions.
func (asm *Assembler) pruneRegions() {
	for len(asm.regions) > 0 && len(asm.regions[len(asm.regions)-1].Code) == 0 {
		asm.regions = asm.regions[:len(asm.regions)-1]
	}
}

// FormatRegions renders regions one per line.
func FormatRegions(regions []Region) string {
	var sb strings.Builder
	for _, r := range regions {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
