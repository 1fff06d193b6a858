package render

import (
	"strings"
	"testing"

	"github.com/dkoosis/booc/pkg/pattern"
)

func buildPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{
			Label:  "BUILD FAILED: booc",
			Passed: false,
			Metrics: []pattern.SummaryItem{
				{Label: "Errors", Value: "2", Kind: pattern.KindError},
				{Label: "Warnings", Value: "1", Kind: pattern.KindWarning},
				{Label: "Exit code", Value: "1", Kind: pattern.KindError},
			},
		},
		&pattern.Leaderboard{
			Label: "Files with most diagnostics",
			Items: []pattern.LeaderboardItem{
				{Name: "src/Foo.boo", Metric: "1 error, 1 warning", Value: 2, Rank: 1},
			},
			TotalCount: 1,
			ShowRank:   true,
		},
		&pattern.Diagnostics{
			File: "src/Foo.boo",
			Items: []pattern.DiagnosticItem{
				{Severity: "error", Code: "BCE0005", Line: 12, Column: 5, Message: "Unknown identifier: 'bar'."},
				{Severity: "warning", Code: "BCW0003", Line: 3, Column: 1, Message: "Unused local variable 'x'."},
			},
		},
		&pattern.Diagnostics{
			Items: []pattern.DiagnosticItem{
				{Severity: "error", Subcategory: "fatal", Code: "BCE0000", Message: "Out of memory"},
			},
		},
	}
}

func TestLLM_RenderBuild(t *testing.T) {
	out := NewLLM().Render(buildPatterns())

	want := `SCOPE: BUILD FAILED: booc; 1 files, 3 diags (2 err, 1 warn); exit 1

## (no file)
  ERR fatal BCE0000 Out of memory

## src/Foo.boo
  ERR BCE0005:12:5 Unknown identifier: 'bar'.
  WARN BCW0003:3:1 Unused local variable 'x'.
`
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestLLM_IsDeterministic(t *testing.T) {
	r := NewLLM()
	first := r.Render(buildPatterns())
	for i := 0; i < 5; i++ {
		if got := r.Render(buildPatterns()); got != first {
			t.Fatalf("render %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestLLM_NoANSI(t *testing.T) {
	if out := NewLLM().Render(buildPatterns()); strings.Contains(out, "\x1b[") {
		t.Errorf("LLM output must not contain escape codes:\n%q", out)
	}
}

func TestLLM_CleanBuild(t *testing.T) {
	out := NewLLM().Render([]pattern.Pattern{&pattern.Summary{Label: "BUILD PASSED: booc", Passed: true}})
	if out != "SCOPE: BUILD PASSED: booc; 0 files, 0 diags\n" {
		t.Errorf("unexpected output: %q", out)
	}
}
