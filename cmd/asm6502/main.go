package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"golang.org/x/term"
)

func main() {
	opt := arg.New("asm6502")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Write a flat binary image spanning all regions to FILE.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "f", "format", "Output format on stdout: bin, hex or list.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "n", "no-entry", "Do not write the jump at the reset vector.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "m", "max-memory", "Size of the address space.", "$10000", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "r", "reset-vector", "Address of the entry jump.", "$FFFC", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "d", "dump", "Print the parsed program and label table to stderr.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log verbosity (1 = summary, 2 = every instruction).", 0, false, arg.VarInt, nil)
	opt.SetPositional("FILE", "Source file to assemble.", "", true, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return
		}
		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(opt.GetInt("verbose")))
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	cfg := config{
		input:  opt.GetPosString("FILE"),
		output: opt.GetString("output"),
		format: opt.GetString("format"),
		entry:  !opt.GetBool("no-entry"),
		dump:   opt.GetBool("dump"),
		color:  term.IsTerminal(int(os.Stderr.Fd())),
	}
	if cfg.format == "" {
		cfg.format = formatBinary
		if term.IsTerminal(int(os.Stdout.Fd())) {
			cfg.format = formatHex
		}
	}
	if cfg.maxMemory, err = parseAddress(opt.GetString("max-memory")); err != nil {
		glog.Exitf("Invalid --max-memory: %v", err)
	}
	if cfg.resetVector, err = parseAddress(opt.GetString("reset-vector")); err != nil {
		glog.Exitf("Invalid --reset-vector: %v", err)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		glog.Exitf("%s: %v", cfg.input, err)
	}
}
