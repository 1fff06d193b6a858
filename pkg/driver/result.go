package driver

import (
	"time"

	"github.com/google/uuid"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/report"
	"github.com/dkoosis/booc/pkg/sarif"
	"github.com/dkoosis/booc/pkg/toolchain"
)

// Result is the outcome of one compiler invocation.
type Result struct {
	ID       uuid.UUID
	Identity toolchain.Identity
	Args     booc.Arguments
	Command  invoke.Command
	ExitCode int
	Records  []diag.Record
	Issues   []booc.Issue
	Started  time.Time
	Duration time.Duration
}

// Errors counts error records.
func (r *Result) Errors() int {
	n := 0
	for _, rec := range r.Records {
		if rec.IsError() {
			n++
		}
	}
	return n
}

// Warnings counts warning records.
func (r *Result) Warnings() int {
	return len(r.Records) - r.Errors()
}

// Success reports a zero exit code with no error diagnostics.
func (r *Result) Success() bool {
	return r.ExitCode == 0 && r.Errors() == 0
}

// Summary converts the result for reporters.
func (r *Result) Summary(err error) report.Summary {
	return report.Summary{
		ID:          r.ID.String(),
		Tool:        r.Identity.ToolName(),
		CommandLine: r.Command.String(),
		ExitCode:    r.ExitCode,
		Errors:      r.Errors(),
		Warnings:    r.Warnings(),
		Duration:    r.Duration,
		Success:     err == nil && r.Success(),
		Err:         err,
	}
}

// SARIF returns the result as a SARIF log attributed to toolVersion.
func (r *Result) SARIF(toolVersion string) *sarif.Document {
	return sarif.FromRecords("booc", toolVersion, r.Records).
		SetInvocation(r.Command.String(), r.ExitCode, r.Success()).
		SetTimes(r.Started, r.Started.Add(r.Duration)).
		SetGUID(r.ID.String()).
		Document()
}
