package main

import (
	"flag"
	"strings"

	"github.com/dkoosis/booc/internal/config"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// buildFlags binds the flags shared by build and args.
func buildFlags(fs *flag.FlagSet) *config.CliFlags {
	f := &config.CliFlags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Build file (default: ./"+config.FileName+")")
	fs.StringVar(&f.Dir, "C", "", "Run the compiler in `dir` and resolve sources against it")
	fs.StringVar(&f.Framework, "framework", "", "Target framework version, e.g. v4.5")
	fs.StringVar(&f.Verbosity, "verbosity", "", "Compiler verbosity: Normal, Warning, Info, Verbose")
	fs.StringVar(&f.TargetType, "target", "", "Target type: exe, winexe, library")
	fs.StringVar(&f.OutputAssembly, "out", "", "Output assembly path")
	fs.StringVar(&f.Defines, "define", "", "Conditional compilation symbols")
	fs.Var((*stringList)(&f.References), "r", "Assembly reference (repeatable)")
	fs.Var((*stringList)(&f.Exclude), "exclude", "Glob of sources to skip (repeatable)")
	fs.StringVar(&f.ToolDir, "tool-dir", "", "Directory holding the compiler executables")
	fs.StringVar(&f.Launcher, "launcher", "", "Command that runs the compiler, e.g. mono")
	fs.StringVar(&f.Format, "format", "", "Output format: "+strings.Join(config.Formats, ", "))
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colors")
	fs.BoolVar(&f.CI, "ci", false, "CI mode: no colors, no live view")
	fs.BoolVar(&f.Live, "live", false, "Show live progress while compiling")
	return f
}

// markSet records which boolean flags were given explicitly. Call after
// fs.Parse.
func markSet(fs *flag.FlagSet, f *config.CliFlags) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			f.DebugSet = true
		case "no-color":
			f.NoColorSet = true
		case "ci":
			f.CISet = true
		case "live":
			f.LiveSet = true
		}
	})
	f.Sources = fs.Args()
}
