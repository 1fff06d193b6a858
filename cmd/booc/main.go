// booc runs the Boo compiler and reports its diagnostics.
//
// Usage:
//
//	booc build [flags] [sources...]   compile and report diagnostics
//	booc args [flags] [sources...]    print the compiler command line
//	booc classify [flags] < build.log convert compiler output to SARIF
//	booc report [-in file]            re-render a SARIF log or compiler output
//	booc frameworks                   list supported framework versions
//	booc version                      print version information
//
// Options come from .booc.yaml, BOOC_* environment variables and flags, in
// increasing priority.
//
// Output modes for build and report (auto-detected):
//
//	terminal  styled Unicode output (default when TTY)
//	llm       terse plain text for AI consumption (default when piped)
//	json      structured JSON for automation
//	sarif     SARIF 2.1.0 log
//	text      classic "file(line,col): error code: message" lines
package main

import (
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // build failed or input holds errors
	exitUsage   = 2 // bad flags, configuration or input
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "build":
		return runBuild(rest, stdout, stderr)
	case "args":
		return runArgs(rest, stdout, stderr)
	case "classify":
		return runClassify(rest, stdin, stdout, stderr)
	case "report":
		return runReport(rest, stdin, stdout, stderr)
	case "frameworks":
		return runFrameworks(rest, stdout, stderr)
	case "version", "-version", "--version":
		return runVersion(stdout)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "booc: unknown command %q\n", cmd)
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: booc <command> [flags]

Commands:
  build       compile sources and report diagnostics
  args        print the compiler command line without running it
  classify    read compiler output on stdin and emit diagnostics
  report      re-render a SARIF log or captured compiler output
  frameworks  list supported framework versions
  version     print version information

Run "booc <command> -h" for the flags of a command.
`)
}
