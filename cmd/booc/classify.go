package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dkoosis/booc/internal/detect"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/sarif"
)

// classifyLines reads compiler output from r and collects its diagnostics
// into a SARIF log attributed to tool.
func classifyLines(r io.Reader, tool string, imp diag.Importance) (*sarif.Document, error) {
	classifier := diag.DefaultClassifier()
	var recs []diag.Record
	err := invoke.ReadLines(r, invoke.DefaultMaxLineLength, func(text string, _ int) {
		if rec, ok := classifier.Classify(text, imp); ok {
			recs = append(recs, rec)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("reading compiler output: %w", err)
	}
	return sarif.FromRecords(tool, "", recs).Document(), nil
}

func runClassify(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("booc classify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tool := fs.String("tool", "booc", "Tool name for SARIF driver.name")
	importance := fs.String("importance", "normal", "Importance of the input lines: high, normal, low")
	format := fs.String("format", "sarif", "Output format: sarif, text, llm, json, terminal")
	themeFlag := fs.String("theme", "default", "Theme: default, mono")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	imp, err := diag.ParseImportance(*importance)
	if err != nil {
		fmt.Fprintf(stderr, "booc classify: %v\n", err)
		return exitUsage
	}

	doc, err := classifyLines(stdin, *tool, imp)
	if err != nil {
		fmt.Fprintf(stderr, "booc classify: %v\n", err)
		return exitUsage
	}
	return emit(doc, resolveFormat(*format, stdout), *themeFlag, os.Getenv("NO_COLOR") != "", stdout, stderr)
}

func runReport(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("booc report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "SARIF log or compiler output to read (default: stdin)")
	format := fs.String("format", "auto", "Output format: auto, terminal, llm, json, sarif, text")
	themeFlag := fs.String("theme", "default", "Theme: default, mono")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	r := stdin
	if *in != "" && *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintf(stderr, "booc report: %v\n", err)
			return exitUsage
		}
		defer f.Close()
		r = f
	}

	// Peek to detect format without consuming
	br := bufio.NewReaderSize(r, 8*1024)
	peeked, _ := br.Peek(4096)

	var doc *sarif.Document
	var err error
	switch detect.Sniff(peeked) {
	case detect.SARIF:
		doc, err = sarif.Read(br)
	case detect.Compiler:
		doc, err = classifyLines(br, "booc", diag.ImportanceNormal)
	default:
		fmt.Fprintf(stderr, "booc report: unrecognized input (expected SARIF or compiler output)\n")
		return exitUsage
	}
	if err != nil {
		fmt.Fprintf(stderr, "booc report: %v\n", err)
		return exitUsage
	}
	return emit(doc, resolveFormat(*format, stdout), *themeFlag, os.Getenv("NO_COLOR") != "", stdout, stderr)
}

// emit writes doc and maps its contents to an exit code.
func emit(doc *sarif.Document, mode, themeName string, noColor bool, stdout, stderr io.Writer) int {
	switch mode {
	case "terminal", "llm", "json", "sarif", "text":
	default:
		fmt.Fprintf(stderr, "booc: unknown format %q\n", mode)
		return exitUsage
	}
	if err := writeDocument(stdout, doc, mode, themeName, noColor); err != nil {
		fmt.Fprintf(stderr, "booc: writing output: %v\n", err)
		return exitUsage
	}
	if hasErrors(doc) {
		return exitFailure
	}
	return exitOK
}
