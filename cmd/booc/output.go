package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/booc/internal/version"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/mapper"
	"github.com/dkoosis/booc/pkg/render"
	"github.com/dkoosis/booc/pkg/sarif"
)

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

func resolveFormat(format string, w io.Writer) string {
	if format != "" && format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if isTTYWriter(w) {
		return "terminal"
	}
	return "llm"
}

func selectRenderer(mode, themeName string, noColor bool, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "llm":
		return render.NewLLM()
	default:
		theme := render.ThemeByName(themeName)
		if noColor {
			theme = render.MonoTheme()
		}
		return render.NewTerminal(theme, termWidth(w))
	}
}

// writeDocument prints doc in mode.
func writeDocument(w io.Writer, doc *sarif.Document, mode, themeName string, noColor bool) error {
	switch mode {
	case "sarif":
		_, err := doc.WriteTo(w)
		return err
	case "text":
		for _, rec := range records(doc) {
			if _, err := fmt.Fprintln(w, rec.String()); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprint(w, selectRenderer(mode, themeName, noColor, w).Render(mapper.FromSARIF(doc)))
		return err
	}
}

// records turns SARIF results back into compiler records, for text output.
func records(doc *sarif.Document) []diag.Record {
	var recs []diag.Record
	for _, run := range doc.Runs {
		for _, r := range run.Results {
			rec := diag.Record{
				Severity:    diag.SeverityWarning,
				Subcategory: r.Properties["subcategory"],
				Code:        r.RuleID,
				File:        r.File(),
				Line:        r.Line(),
				Column:      r.Col(),
				Message:     r.Message.Text,
			}
			if r.Level == "error" {
				rec.Severity = diag.SeverityError
			}
			if rec.File == "" {
				rec.File = diag.DefaultErrorFile
			}
			recs = append(recs, rec)
		}
	}
	return recs
}

// hasErrors reports whether doc holds an error-level result.
func hasErrors(doc *sarif.Document) bool {
	return sarif.ComputeStats(doc).ByLevel["error"] > 0
}

func toolVersion() string {
	return version.Version
}
