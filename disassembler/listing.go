package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/asm6502/cpu"
)

// Listing renders a linear sweep of code at origin with addresses and raw
// bytes. Undecodable bytes are shown as .BYTE and branches note their target.
func Listing(code []byte, origin int) string {
	var sb strings.Builder
	for pc := 0; pc < len(code); {
		addr := origin + pc
		inst, err := Decode(code[pc:], addr)
		if err != nil {
			fmt.Fprintf(&sb, "%04X  %-8s  .BYTE $%02X\n", addr, fmt.Sprintf("%02X", code[pc]), code[pc])
			pc++
			continue
		}
		raw := fmt.Sprintf("% X", code[pc:pc+inst.Size])
		if cpu.IsBranch(inst.Mnemonic) {
			fmt.Fprintf(&sb, "%04X  %-8s  %-12s ; $%04X\n", addr, raw, inst, addr+inst.Operand)
		} else {
			fmt.Fprintf(&sb, "%04X  %-8s  %s\n", addr, raw, inst)
		}
		pc += inst.Size
	}
	return sb.String()
}
