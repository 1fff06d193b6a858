// Package report delivers compiler diagnostics to the build log as they
// are found.
package report

import (
	"time"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
)

// Reporter receives the events of one build in order. Calls are made from a
// single goroutine.
type Reporter interface {
	// Diagnostic is called for every classified output line.
	Diagnostic(rec diag.Record)
	// Message is called for output lines that carry no diagnostic.
	Message(line invoke.Line)
	// Issue is called for configuration problems that did not stop the build.
	Issue(issue booc.Issue)
	// Finish is called once, after the compiler has exited.
	Finish(sum Summary)
}

// Summary describes a finished build.
type Summary struct {
	ID          string
	Tool        string
	CommandLine string
	ExitCode    int
	Errors      int
	Warnings    int
	Duration    time.Duration
	Success     bool
	Err         error
}

// Multi fans events out to every reporter in order.
type Multi []Reporter

func (m Multi) Diagnostic(rec diag.Record) {
	for _, r := range m {
		r.Diagnostic(rec)
	}
}

func (m Multi) Message(line invoke.Line) {
	for _, r := range m {
		r.Message(line)
	}
}

func (m Multi) Issue(issue booc.Issue) {
	for _, r := range m {
		r.Issue(issue)
	}
}

func (m Multi) Finish(sum Summary) {
	for _, r := range m {
		r.Finish(sum)
	}
}

// Discard drops every event.
type Discard struct{}

func (Discard) Diagnostic(diag.Record) {}
func (Discard) Message(invoke.Line)    {}
func (Discard) Issue(booc.Issue)       {}
func (Discard) Finish(Summary)         {}

// Counter tallies diagnostics by severity.
type Counter struct {
	Errors   int
	Warnings int
	Messages int
	Issues   int
}

func (c *Counter) Diagnostic(rec diag.Record) {
	if rec.IsError() {
		c.Errors++
		return
	}
	c.Warnings++
}

func (c *Counter) Message(invoke.Line) { c.Messages++ }
func (c *Counter) Issue(booc.Issue)    { c.Issues++ }
func (c *Counter) Finish(Summary)      {}
