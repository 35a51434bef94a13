package assembler

import (
	"fmt"
	"maps"

	"github.com/golang/glog"

	"github.com/Urethramancer/asm6502/cpu"
)

// Options configures an Assembler. Zero values select the defaults.
type Options struct {
	// MaxMemory is the first offset code may not reach. Default $10000.
	// The entry jump has to fit below it as well, so a smaller memory needs
	// a matching ResetVector when assembling with addEntry.
	MaxMemory int
	// ResetVector is where the entry jump is written. Default $FFFC.
	ResetVector int
}

// Assembler holds the state for the assembly process.
type Assembler struct {
	maxMemory   int
	resetVector int

	codeStart int
	offset    int
	line      int
	offsets   []int
	zeroPage  []bool
	labels    map[string]int
	regions   []Region
}

// New creates a new Assembler instance with default options.
func New() *Assembler {
	return NewWithOptions(Options{})
}

// NewWithOptions creates an Assembler with a custom memory size or reset vector.
func NewWithOptions(o Options) *Assembler {
	asm := &Assembler{
		maxMemory:   o.MaxMemory,
		resetVector: o.ResetVector,
	}
	if asm.maxMemory <= 0 {
		asm.maxMemory = cpu.MemorySize
	}
	if asm.resetVector <= 0 {
		asm.resetVector = cpu.ResetVector
	}
	asm.reset()
	return asm
}

func (asm *Assembler) reset() {
	asm.codeStart = -1
	asm.offset = 0
	asm.line = 0
	asm.offsets = nil
	asm.zeroPage = nil
	asm.labels = make(map[string]int)
	asm.regions = nil
}

// Offset implements Env.
func (asm *Assembler) Offset() int {
	return asm.offset
}

// Label implements Env.
func (asm *Assembler) Label(name string) (int, bool) {
	v, ok := asm.labels[name]
	return v, ok
}

// Labels returns a copy of the label table from the last run.
func (asm *Assembler) Labels() map[string]int {
	return maps.Clone(asm.labels)
}

// Entry returns the offset of the first executable instruction of the last
// run, or 0 if there was none.
func (asm *Assembler) Entry() int {
	if asm.codeStart < 0 {
		return 0
	}
	return asm.codeStart
}

// Assemble takes 6502 assembly source and returns the code regions.
// With addEntry set, a jump to the first instruction is written at the reset vector.
func (asm *Assembler) Assemble(src string, addEntry bool) ([]Region, error) {
	insts, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return asm.AssembleInstructions(insts, addEntry)
}

// AssembleInstructions assembles already parsed (or generated) instructions.
func (asm *Assembler) AssembleInstructions(insts []Instruction, addEntry bool) ([]Region, error) {
	asm.reset()

	if err := asm.layout(insts); err != nil {
		return nil, err
	}
	if err := asm.generate(insts); err != nil {
		return nil, err
	}
	asm.pruneRegions()

	if addEntry {
		if err := asm.writeEntry(); err != nil {
			return nil, asm.fail(err)
		}
	}

	glog.V(1).Infof("assembled %d instructions into %d regions, entry $%04X", len(asm.offsets), len(asm.regions), asm.Entry())
	return asm.regions, nil
}

func (asm *Assembler) fail(err error) error {
	return &AssembleError{Line: asm.line, Err: err}
}

func (asm *Assembler) bind(label string) error {
	if _, ok := asm.labels[label]; ok {
		return fmt.Errorf("%w '%s'", ErrDuplicateLabel, label)
	}
	asm.labels[label] = asm.offset
	return nil
}

// layout is pass 1: bind labels, size instructions and record their offsets.
func (asm *Assembler) layout(insts []Instruction) error {
	for i := range insts {
		inst := &insts[i]
		asm.line = inst.Line

		op, ok := opcodes[inst.Opcode]
		if !ok {
			return asm.fail(fmt.Errorf("%w '%s'", ErrUnknownKeyword, inst.Opcode))
		}
		if err := op.validate(inst); err != nil {
			return asm.fail(err)
		}

		if inst.Label != "" && !op.origin {
			if err := asm.bind(inst.Label); err != nil {
				return asm.fail(err)
			}
		}
		size, zeroPage, err := op.size(asm, inst)
		if err != nil {
			return asm.fail(fmt.Errorf("error calculating size for '%v': %w", inst, err))
		}
		if inst.Label != "" && op.origin {
			if err := asm.bind(inst.Label); err != nil {
				return asm.fail(err)
			}
		}

		if !op.pseudo && asm.codeStart < 0 {
			asm.codeStart = asm.offset
		}
		asm.offsets = append(asm.offsets, asm.offset)
		asm.zeroPage = append(asm.zeroPage, zeroPage)
		glog.V(2).Infof("pass 1: $%04X %-20v size %d zp %v", asm.offset, inst, size, zeroPage)

		asm.offset += size
		if asm.offset >= asm.maxMemory {
			return asm.fail(fmt.Errorf("%w: the code exceeds $%X", ErrOutOfMemory, asm.maxMemory))
		}
		if op.stop {
			break
		}
	}
	return nil
}

// generate is pass 2: emit code at the offsets recorded by layout.
func (asm *Assembler) generate(insts []Instruction) error {
	for i, offset := range asm.offsets {
		inst := &insts[i]
		asm.line = inst.Line
		asm.offset = offset

		op := opcodes[inst.Opcode]
		code, err := op.emit(asm, inst, asm.zeroPage[i])
		if err != nil {
			return asm.fail(fmt.Errorf("error generating code for '%v': %w", inst, err))
		}
		glog.V(2).Infof("pass 2: $%04X %-20v % X", offset, inst, code)
		asm.write(code)
	}
	return nil
}
