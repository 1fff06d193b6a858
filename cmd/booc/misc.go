package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/booc/internal/version"
	"github.com/dkoosis/booc/pkg/toolchain"
)

func runFrameworks(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("booc frameworks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "Print as JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	ids := toolchain.All()
	if *asJSON {
		return writeJSON(stdout, stderr, ids)
	}
	width := runewidth.StringWidth("FRAMEWORK")
	for _, id := range ids {
		width = max(width, runewidth.StringWidth(id.Tag))
	}
	fmt.Fprintf(stdout, "%s  %s\n", runewidth.FillRight("FRAMEWORK", width), "TOOL")
	for _, id := range ids {
		fmt.Fprintf(stdout, "%s  %s\n", runewidth.FillRight(id.Tag, width), id.ToolName())
	}
	return exitOK
}

func runVersion(stdout io.Writer) int {
	version.Fprint(stdout, "booc")
	return exitOK
}

func writeJSON(stdout, stderr io.Writer, v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "booc: encoding JSON: %v\n", err)
		return exitUsage
	}
	fmt.Fprintln(stdout, string(data))
	return exitOK
}
