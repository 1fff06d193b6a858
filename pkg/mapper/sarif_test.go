package mapper

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/driver"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/pattern"
	"github.com/dkoosis/booc/pkg/sarif"
	"github.com/dkoosis/booc/pkg/toolchain"
)

func failedBuild() *driver.Result {
	return &driver.Result{
		ID:       uuid.MustParse("6f1c1b9e-4c5d-4e7a-9a39-0d1f6b2f0c11"),
		Identity: toolchain.Identity{Tag: "v4.5", AssemblyName: "boocNET45"},
		Command:  invoke.Command{Path: "boocNET45.exe", Args: []string{"src/Foo.boo"}},
		ExitCode: 1,
		Started:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Duration: 1250 * time.Millisecond,
		Records: []diag.Record{
			{Severity: diag.SeverityWarning, Code: "BCW0003", File: "src/Foo.boo", Line: 3, Column: 1, Message: "Unused local variable 'x'."},
			{Severity: diag.SeverityError, Code: "BCE0005", File: "src/Foo.boo", Line: 12, Column: 5, Message: "Unknown identifier: 'bar'."},
			{Severity: diag.SeverityError, Code: "BCE0004", File: "src/Bar.boo", Line: 7, Column: 2, Message: "Ambiguous reference."},
			{Severity: diag.SeverityError, Subcategory: "fatal", Code: diag.DefaultErrorCode, File: diag.DefaultErrorFile, Message: "Out of memory"},
		},
	}
}

func TestFromSARIF_SummaryLeaderboardAndTables(t *testing.T) {
	patterns := FromSARIF(failedBuild().SARIF("dev"))
	require.Len(t, patterns, 5)

	sum, ok := patterns[0].(*pattern.Summary)
	require.True(t, ok, "expected Summary first, got %T", patterns[0])
	assert.False(t, sum.Passed)
	assert.Equal(t, "BUILD FAILED: booc", sum.Label)
	wantMetrics := []pattern.SummaryItem{
		{Label: "Errors", Value: "3", Kind: pattern.KindError},
		{Label: "Warnings", Value: "1", Kind: pattern.KindWarning},
		{Label: "Exit code", Value: "1", Kind: pattern.KindError},
		{Label: "Duration", Value: "1.25s", Kind: pattern.KindInfo},
	}
	if diff := cmp.Diff(wantMetrics, sum.Metrics); diff != "" {
		t.Errorf("metrics (-want +got):\n%s", diff)
	}

	lb, ok := patterns[1].(*pattern.Leaderboard)
	require.True(t, ok, "expected Leaderboard second, got %T", patterns[1])
	require.Len(t, lb.Items, 2)
	assert.Equal(t, "src/Foo.boo", lb.Items[0].Name)
	assert.Equal(t, "1 error, 1 warning", lb.Items[0].Metric)
	assert.Equal(t, 2, lb.TotalCount)

	foo, ok := patterns[2].(*pattern.Diagnostics)
	require.True(t, ok)
	assert.Equal(t, "src/Foo.boo", foo.File)
	require.Len(t, foo.Items, 2)
	assert.Equal(t, "BCE0005", foo.Items[0].Code, "errors sort before warnings")
	assert.Equal(t, 1, foo.Errors())

	bar := patterns[3].(*pattern.Diagnostics)
	assert.Equal(t, "src/Bar.boo", bar.File)

	fatal := patterns[4].(*pattern.Diagnostics)
	assert.Equal(t, "", fatal.File)
	assert.Equal(t, "fatal", fatal.Items[0].Subcategory)
	assert.Zero(t, fatal.Items[0].Line)
}

func TestFromSARIF_Passed_When_CleanBuild(t *testing.T) {
	res := failedBuild()
	res.ExitCode = 0
	res.Records = res.Records[:1]

	patterns := FromSARIF(res.SARIF("dev"))
	require.Len(t, patterns, 2, "single file has no leaderboard")

	sum := patterns[0].(*pattern.Summary)
	assert.True(t, sum.Passed)
	assert.Equal(t, "BUILD PASSED: booc", sum.Label)
	assert.Equal(t, pattern.KindSuccess, sum.Metrics[0].Kind)
}

func TestFromSARIF_WithoutInvocation(t *testing.T) {
	doc := sarif.NewBuilder("booc", "").
		AddResult("BCE0005", "error", "m", "a.boo", 1, 1).
		Document()

	sum := FromSARIF(doc)[0].(*pattern.Summary)
	assert.False(t, sum.Passed)
	assert.Len(t, sum.Metrics, 2, "no exit code or duration without invocation")
}

func TestLeaderboard_TruncatesToTopFiles(t *testing.T) {
	b := sarif.NewBuilder("booc", "")
	for i := 0; i < leaderboardSize+3; i++ {
		b.AddResult("BCW0003", "warning", "m", fmt.Sprintf("src/f%02d.boo", i), 1, 1)
	}
	patterns := FromSARIF(b.Document())

	lb := patterns[1].(*pattern.Leaderboard)
	assert.Len(t, lb.Items, leaderboardSize)
	assert.Equal(t, leaderboardSize+3, lb.TotalCount)
	assert.Equal(t, "1 warning", lb.Items[0].Metric)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Foo.boo", displayName("Foo.boo"))
	assert.Equal(t, "src/Foo.boo", displayName("src/Foo.boo"))
	assert.Equal(t, "lib/Foo.boo", displayName("/home/me/proj/lib/Foo.boo"))
}
