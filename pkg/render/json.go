package render

import (
	"encoding/json"

	"github.com/dkoosis/booc/pkg/pattern"
)

// JSON renders patterns as structured JSON for scripts and CI steps. The
// top-level counts spare consumers a walk over the patterns.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonOutput struct {
	Version  string        `json:"version"`
	Passed   bool          `json:"passed"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Files    []string      `json:"files"`
	Patterns []jsonPattern `json:"patterns"`
}

type jsonPattern struct {
	Type pattern.PatternType `json:"type"`
	Data pattern.Pattern     `json:"data"`
}

// Render formats all patterns as JSON.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	out := jsonOutput{
		Version:  "1",
		Passed:   true,
		Files:    []string{},
		Patterns: make([]jsonPattern, 0, len(patterns)),
	}
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			out.Passed = v.Passed
		case *pattern.Diagnostics:
			errs := v.Errors()
			out.Errors += errs
			out.Warnings += len(v.Items) - errs
			if v.File != "" {
				out.Files = append(out.Files, v.File)
			}
		}
		out.Patterns = append(out.Patterns, jsonPattern{Type: p.Type(), Data: p})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON) + "\n"
	}
	return string(data) + "\n"
}
