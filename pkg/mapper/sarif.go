// Package mapper converts build results to render patterns.
package mapper

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/dkoosis/booc/pkg/pattern"
	"github.com/dkoosis/booc/pkg/sarif"
)

// leaderboardSize bounds the files-with-most-diagnostics list.
const leaderboardSize = 10

// FromSARIF converts a SARIF log into patterns.
// Returns: Summary + Leaderboard (if >1 file) + Diagnostics per file.
func FromSARIF(doc *sarif.Document) []pattern.Pattern {
	stats := sarif.ComputeStats(doc)
	patterns := []pattern.Pattern{summary(doc, stats)}

	groups := sarif.GroupByFile(doc)
	if lb := leaderboard(groups, stats); lb != nil {
		patterns = append(patterns, lb)
	}
	for _, g := range groups {
		patterns = append(patterns, fileDiagnostics(g))
	}
	return patterns
}

func summary(doc *sarif.Document, stats sarif.Stats) *pattern.Summary {
	errs, warns := stats.ByLevel["error"], stats.ByLevel["warning"]
	s := &pattern.Summary{Passed: errs == 0}

	tool := "booc"
	var run sarif.Run
	if len(doc.Runs) > 0 {
		run = doc.Runs[0]
		tool = run.Tool.Driver.Name
	}
	if len(run.Invocations) > 0 {
		s.Passed = s.Passed && run.Invocations[0].ExecutionSuccessful
	}

	status := "BUILD PASSED"
	if !s.Passed {
		status = "BUILD FAILED"
	}
	s.Label = fmt.Sprintf("%s: %s", status, tool)

	s.Metrics = append(s.Metrics,
		countItem("Errors", errs, pattern.KindError),
		countItem("Warnings", warns, pattern.KindWarning),
	)
	if len(run.Invocations) > 0 && run.Invocations[0].ExitCode != nil {
		code := *run.Invocations[0].ExitCode
		kind := pattern.KindSuccess
		if code != 0 {
			kind = pattern.KindError
		}
		s.Metrics = append(s.Metrics, pattern.SummaryItem{Label: "Exit code", Value: strconv.Itoa(code), Kind: kind})
	}
	if d := run.Duration(); d > 0 {
		s.Metrics = append(s.Metrics, pattern.SummaryItem{Label: "Duration", Value: d.Round(time.Millisecond).String(), Kind: pattern.KindInfo})
	}
	return s
}

func countItem(label string, n int, kind string) pattern.SummaryItem {
	if n == 0 {
		kind = pattern.KindSuccess
	}
	return pattern.SummaryItem{Label: label, Value: strconv.Itoa(n), Kind: kind}
}

func leaderboard(groups []sarif.GroupedResults, stats sarif.Stats) *pattern.Leaderboard {
	if len(stats.ByFile) <= 1 {
		return nil
	}

	items := make([]pattern.LeaderboardItem, 0, leaderboardSize)
	for _, g := range groups {
		if g.Key == "" {
			continue
		}
		if len(items) == leaderboardSize {
			break
		}
		var errs, warns int
		for _, r := range g.Results {
			if r.Level == "error" {
				errs++
			} else {
				warns++
			}
		}
		items = append(items, pattern.LeaderboardItem{
			Name:   displayName(g.Key),
			Metric: countPhrase(errs, warns),
			Value:  float64(len(g.Results)),
			Rank:   len(items) + 1,
		})
	}

	return &pattern.Leaderboard{
		Label:      "Files with most diagnostics",
		MetricName: "Diagnostics",
		Items:      items,
		TotalCount: len(stats.ByFile),
		ShowRank:   true,
	}
}

// displayName keeps the parent directory and base name of path.
func displayName(path string) string {
	name := filepath.Base(path)
	if dir := filepath.Dir(path); dir != "." && dir != string(filepath.Separator) {
		name = filepath.Join(filepath.Base(dir), name)
	}
	return name
}

func countPhrase(errs, warns int) string {
	plural := func(n int, word string) string {
		if n == 1 {
			return "1 " + word
		}
		return fmt.Sprintf("%d %ss", n, word)
	}
	switch {
	case errs > 0 && warns > 0:
		return plural(errs, "error") + ", " + plural(warns, "warning")
	case errs > 0:
		return plural(errs, "error")
	default:
		return plural(warns, "warning")
	}
}

func fileDiagnostics(g sarif.GroupedResults) *pattern.Diagnostics {
	// Errors first, then by position.
	sorted := make([]sarif.Result, len(g.Results))
	copy(sorted, g.Results)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := levelPriority(sorted[i].Level), levelPriority(sorted[j].Level)
		if li != lj {
			return li < lj
		}
		if sorted[i].Line() != sorted[j].Line() {
			return sorted[i].Line() < sorted[j].Line()
		}
		return sorted[i].Col() < sorted[j].Col()
	})

	items := make([]pattern.DiagnosticItem, len(sorted))
	for i, r := range sorted {
		items[i] = pattern.DiagnosticItem{
			Severity:    r.Level,
			Subcategory: r.Properties["subcategory"],
			Code:        r.RuleID,
			Line:        r.Line(),
			Column:      r.Col(),
			Message:     r.Message.Text,
		}
	}
	return &pattern.Diagnostics{File: g.Key, Items: items}
}

func levelPriority(level string) int {
	switch level {
	case "error":
		return 0
	case "warning":
		return 1
	default:
		return 2
	}
}
