// Package diag classifies compiler output lines into structured diagnostics.
package diag

import (
	"fmt"
	"strings"
)

// Severity of a diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Importance is the orchestrator-assigned weight of an output line. Only
// Normal lines are classified. The zero value is Normal.
type Importance int

const (
	ImportanceNormal Importance = iota
	ImportanceHigh
	ImportanceLow
)

func (i Importance) String() string {
	switch i {
	case ImportanceHigh:
		return "high"
	case ImportanceNormal:
		return "normal"
	case ImportanceLow:
		return "low"
	default:
		return fmt.Sprintf("importance(%d)", int(i))
	}
}

// ParseImportance accepts high, normal or low in any case.
func ParseImportance(s string) (Importance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return ImportanceHigh, nil
	case "normal", "":
		return ImportanceNormal, nil
	case "low":
		return ImportanceLow, nil
	default:
		return ImportanceNormal, fmt.Errorf("invalid importance %q (must be: high, normal, low)", s)
	}
}

// Defaults applied to error lines that omit a code or a file.
const (
	DefaultErrorCode = "BCE0000"
	DefaultErrorFile = "BOOC"
)

// Record is one diagnostic reported by the compiler. Line and Column are zero
// when the compiler gave no position.
type Record struct {
	Severity    Severity `json:"severity"`
	Subcategory string   `json:"subcategory,omitempty"`
	Code        string   `json:"code"`
	File        string   `json:"file,omitempty"`
	Line        int      `json:"line,omitempty"`
	Column      int      `json:"column,omitempty"`
	Message     string   `json:"message"`
}

// IsError reports whether r fails the build.
func (r Record) IsError() bool {
	return r.Severity == SeverityError
}

// HasPosition reports whether r points at a line in a source file.
func (r Record) HasPosition() bool {
	return r.Line > 0
}

// String renders r in the canonical "file(line,col): severity code: message"
// form understood by build log scanners.
func (r Record) String() string {
	var sb strings.Builder
	if r.File != "" {
		sb.WriteString(r.File)
		if r.HasPosition() {
			fmt.Fprintf(&sb, "(%d,%d)", r.Line, r.Column)
		}
		sb.WriteString(": ")
	}
	if r.Subcategory != "" {
		sb.WriteString(r.Subcategory + " ")
	}
	fmt.Fprintf(&sb, "%s %s: %s", r.Severity, r.Code, r.Message)
	return sb.String()
}
