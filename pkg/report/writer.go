package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
)

// Writer prints events as plain build-log text, one diagnostic per line in
// the canonical "file(line,col): error CODE: message" form.
type Writer struct {
	w io.Writer
	// Echo also prints output lines that carry no diagnostic.
	Echo bool
}

// NewWriter returns a Writer reporter printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (p *Writer) Diagnostic(rec diag.Record) {
	fmt.Fprintln(p.w, rec.String())
}

func (p *Writer) Message(line invoke.Line) {
	if p.Echo {
		fmt.Fprintln(p.w, line.Text)
	}
}

func (p *Writer) Issue(issue booc.Issue) {
	fmt.Fprintf(p.w, "booc: warning %s: %s\n", issue.Code, issue.Message)
}

func (p *Writer) Finish(sum Summary) {
	status := "succeeded"
	if !sum.Success {
		status = "FAILED"
	}
	fmt.Fprintf(p.w, "Build %s. %d error(s), %d warning(s), exit code %d (%s)\n",
		status, sum.Errors, sum.Warnings, sum.ExitCode, sum.Duration.Round(time.Millisecond))
	if sum.Err != nil && !sum.Success {
		fmt.Fprintf(p.w, "booc: %v\n", sum.Err)
	}
}
