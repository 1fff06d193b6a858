// Package render presents build patterns as text.
package render

import "github.com/dkoosis/booc/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// noFile labels diagnostics that carry no source file.
const noFile = "(no file)"

func fileLabel(file string) string {
	if file == "" {
		return noFile
	}
	return file
}
