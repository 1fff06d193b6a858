package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkoosis/booc/pkg/pattern"
)

// LLM renders patterns as terse plain text for AI agents and logs.
// Zero ANSI codes, deterministic sort, one SCOPE line.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

type diagEntry struct {
	file  string
	level string
	item  pattern.DiagnosticItem
}

// Render formats all patterns for LLM consumption. Leaderboards are omitted;
// the per-file listing already carries the same information.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sum *pattern.Summary
	var diags []diagEntry
	files := 0

	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			sum = v
		case *pattern.Diagnostics:
			if v.File != "" {
				files++
			}
			for _, it := range v.Items {
				diags = append(diags, diagEntry{file: fileLabel(v.File), level: llmLevel(it.Severity), item: it})
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("SCOPE: " + scope(sum, files, diags) + "\n")

	// Sort: severity, then file, line and code.
	sort.SliceStable(diags, func(i, j int) bool {
		pi, pj := llmLevelPriority(diags[i].level), llmLevelPriority(diags[j].level)
		if pi != pj {
			return pi < pj
		}
		if diags[i].file != diags[j].file {
			return diags[i].file < diags[j].file
		}
		if diags[i].item.Line != diags[j].item.Line {
			return diags[i].item.Line < diags[j].item.Line
		}
		return diags[i].item.Code < diags[j].item.Code
	})

	currentFile := ""
	for _, d := range diags {
		if d.file != currentFile {
			currentFile = d.file
			sb.WriteString("\n## " + d.file + "\n")
		}
		code := d.item.Code
		if d.item.Subcategory != "" {
			code = d.item.Subcategory + " " + code
		}
		if d.item.Line > 0 {
			fmt.Fprintf(&sb, "  %s %s:%d:%d %s\n", d.level, code, d.item.Line, d.item.Column, d.item.Message)
		} else {
			fmt.Fprintf(&sb, "  %s %s %s\n", d.level, code, d.item.Message)
		}
	}
	return sb.String()
}

func scope(sum *pattern.Summary, files int, diags []diagEntry) string {
	var errCount, warnCount int
	for _, d := range diags {
		if d.level == "ERR" {
			errCount++
		} else {
			warnCount++
		}
	}

	parts := []string{fmt.Sprintf("%d files", files), fmt.Sprintf("%d diags", len(diags))}
	var breakdown []string
	if errCount > 0 {
		breakdown = append(breakdown, fmt.Sprintf("%d err", errCount))
	}
	if warnCount > 0 {
		breakdown = append(breakdown, fmt.Sprintf("%d warn", warnCount))
	}
	line := strings.Join(parts, ", ")
	if len(breakdown) > 0 {
		line += " (" + strings.Join(breakdown, ", ") + ")"
	}

	if sum == nil {
		return line
	}
	for _, m := range sum.Metrics {
		if m.Label == "Exit code" {
			line += "; exit " + m.Value
		}
	}
	return sum.Label + "; " + line
}

func llmLevel(severity string) string {
	if severity == pattern.KindError {
		return "ERR"
	}
	return "WARN"
}

func llmLevelPriority(level string) int {
	if level == "ERR" {
		return 0
	}
	return 1
}
