package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/asm6502/assembler"
	"github.com/Urethramancer/asm6502/cpu"
	"github.com/Urethramancer/asm6502/disassembler"
)

const (
	formatBinary = "bin"
	formatHex    = "hex"
	formatList   = "list"
)

type config struct {
	input       string
	output      string
	format      string
	entry       bool
	maxMemory   int
	resetVector int
	dump        bool
	color       bool
}

// parseAddress reads a numeric option with the assembler's numeral syntax.
// An empty string selects the default.
func parseAddress(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := assembler.ParseNumber(s)
	if err != nil {
		return 0, err
	}
	if n.Value <= 0 || n.Value > cpu.MemorySize {
		return 0, fmt.Errorf("%s is outside the address space", s)
	}
	return int(n.Value), nil
}

func run(cfg config, stdout, stderr io.Writer) error {
	switch cfg.format {
	case formatBinary, formatHex, formatList:
	default:
		return fmt.Errorf("unknown output format '%s'", cfg.format)
	}

	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return err
	}

	insts, err := assembler.Parse(string(data))
	if err != nil {
		return err
	}

	asm := assembler.NewWithOptions(assembler.Options{
		MaxMemory:   cfg.maxMemory,
		ResetVector: cfg.resetVector,
	})
	regions, err := asm.AssembleInstructions(insts, cfg.entry)
	if err != nil {
		return err
	}

	if cfg.dump {
		printer := pp.New()
		printer.SetOutput(stderr)
		printer.SetColoringEnabled(cfg.color)
		printer.Println(insts)
		printer.Println(asm.Labels())
	}

	if cfg.output != "" {
		mem, err := load(regions, cfg.maxMemory)
		if err != nil {
			return err
		}
		lo, hi := mem.Span()
		glog.V(1).Infof("writing $%04X-$%04X to %s", lo, hi, cfg.output)
		if cfg.entry {
			vector := cfg.resetVector
			if vector == 0 {
				vector = cpu.ResetVector
			}
			glog.V(1).Infof("entry jump at $%04X to $%04X", vector, mem.ReadU16(vector+1))
		}
		if err := os.WriteFile(cfg.output, mem.Image(), 0644); err != nil {
			return err
		}
	}

	return write(stdout, cfg.format, regions, cfg.maxMemory)
}

// load copies every region into a memory image.
func load(regions []assembler.Region, size int) (*cpu.Memory, error) {
	if size <= 0 {
		size = cpu.MemorySize
	}
	mem := cpu.NewMemory(size)
	for _, r := range regions {
		if err := mem.LoadCode(r.Offset, r.Code); err != nil {
			return nil, err
		}
	}
	return mem, nil
}

func write(w io.Writer, format string, regions []assembler.Region, size int) error {
	switch format {
	case formatHex:
		_, err := io.WriteString(w, assembler.FormatRegions(regions))
		return err
	case formatList:
		for _, r := range regions {
			if _, err := io.WriteString(w, disassembler.Listing(r.Code, r.Offset)); err != nil {
				return err
			}
		}
		return nil
	}

	mem, err := load(regions, size)
	if err != nil {
		return err
	}
	_, err = w.Write(mem.Image())
	return err
}
