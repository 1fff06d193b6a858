package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/report"
)

var (
	sampleError = diag.Record{
		Severity: diag.SeverityError,
		Code:     "BCE0005",
		File:     "src/Foo.boo",
		Line:     12,
		Column:   5,
		Message:  "Unknown identifier: 'bar'.",
	}
	sampleWarning = diag.Record{
		Severity: diag.SeverityWarning,
		Code:     "BCW0003",
		File:     "src/Foo.boo",
		Line:     3,
		Column:   1,
		Message:  "Unused local variable 'x'.",
	}
	sampleIssue = booc.Issue{
		Code:    booc.IssueInvalidVerbosity,
		Field:   "Verbosity",
		Value:   "Loud",
		Message: "bad verbosity",
	}
)

func play(r report.Reporter) {
	r.Message(invoke.Line{Text: "Boo Compiler version 0.9.4", Importance: diag.ImportanceNormal})
	r.Issue(sampleIssue)
	r.Diagnostic(sampleWarning)
	r.Diagnostic(sampleError)
	r.Finish(report.Summary{Tool: "boocNET45.exe", ExitCode: 1, Errors: 1, Warnings: 1, Duration: 1500 * time.Millisecond})
}

func TestWriter_PrintsCanonicalLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	play(report.NewWriter(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "booc: warning InvalidVerbosity: bad verbosity", lines[0])
	assert.Equal(t, "src/Foo.boo(3,1): warning BCW0003: Unused local variable 'x'.", lines[1])
	assert.Equal(t, "src/Foo.boo(12,5): error BCE0005: Unknown identifier: 'bar'.", lines[2])
	assert.Contains(t, lines[3], "Build FAILED. 1 error(s), 1 warning(s), exit code 1")
}

func TestWriter_EchoesMessages_When_EchoSet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := report.NewWriter(&buf)
	w.Echo = true
	w.Message(invoke.Line{Text: "Boo Compiler version 0.9.4"})

	assert.Equal(t, "Boo Compiler version 0.9.4\n", buf.String())
}

func TestWriter_PrintsCause_When_BuildFailed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report.NewWriter(&buf).Finish(report.Summary{ExitCode: 127, Err: errors.New("start boocNET45.exe: not found")})

	assert.Contains(t, buf.String(), "booc: start boocNET45.exe: not found")
}

func TestLog_WritesStructuredEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	play(report.NewLog(logger))

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		entries = append(entries, e)
	}
	require.Len(t, entries, 5)

	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "stdout", entries[0]["stream"])

	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, "Verbosity", entries[1]["field"])

	assert.Equal(t, "warn", entries[2]["level"])
	assert.Equal(t, "BCW0003", entries[2]["code"])

	assert.Equal(t, "error", entries[3]["level"])
	assert.Equal(t, "BCE0005", entries[3]["code"])
	assert.Equal(t, "src/Foo.boo", entries[3]["file"])
	assert.EqualValues(t, 12, entries[3]["line"])
	assert.EqualValues(t, 5, entries[3]["column"])
	assert.Equal(t, "Unknown identifier: 'bar'.", entries[3]["message"])

	assert.Equal(t, "error", entries[4]["level"])
	assert.Equal(t, "build finished", entries[4]["message"])
	assert.EqualValues(t, 1, entries[4]["exit_code"])
}

func TestLog_OmitsPosition_When_RecordHasNone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report.NewLog(zerolog.New(&buf)).Diagnostic(diag.Record{
		Severity:    diag.SeverityError,
		Subcategory: "fatal",
		Code:        diag.DefaultErrorCode,
		File:        diag.DefaultErrorFile,
		Message:     "Out of memory",
	})

	out := buf.String()
	assert.Contains(t, out, `"subcategory":"fatal"`)
	assert.NotContains(t, out, `"line"`)
	assert.NotContains(t, out, `"column"`)
}

func TestMulti_FansOutInOrder(t *testing.T) {
	t.Parallel()

	var a, b report.Counter
	play(report.Multi{&a, report.Discard{}, &b})

	for _, c := range []report.Counter{a, b} {
		assert.Equal(t, 1, c.Errors)
		assert.Equal(t, 1, c.Warnings)
		assert.Equal(t, 1, c.Messages)
		assert.Equal(t, 1, c.Issues)
	}
}
