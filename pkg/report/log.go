package report

import (
	"github.com/rs/zerolog"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
)

// Log writes events as structured zerolog entries. Errors log at error
// level, warnings and issues at warn. Plain output lines log at info when
// they are of high importance and at debug otherwise.
type Log struct {
	logger zerolog.Logger
}

// NewLog returns a Log reporter writing to logger.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Diagnostic(rec diag.Record) {
	ev := l.logger.Warn()
	if rec.IsError() {
		ev = l.logger.Error()
	}
	ev = ev.Str("code", rec.Code)
	if rec.Subcategory != "" {
		ev = ev.Str("subcategory", rec.Subcategory)
	}
	if rec.File != "" {
		ev = ev.Str("file", rec.File)
	}
	if rec.HasPosition() {
		ev = ev.Int("line", rec.Line).Int("column", rec.Column)
	}
	ev.Msg(rec.Message)
}

func (l *Log) Message(line invoke.Line) {
	ev := l.logger.Debug()
	if line.Importance == diag.ImportanceHigh {
		ev = l.logger.Info()
	}
	ev.Str("stream", line.Stream.String()).Msg(line.Text)
}

func (l *Log) Issue(issue booc.Issue) {
	l.logger.Warn().
		Str("code", string(issue.Code)).
		Str("field", issue.Field).
		Str("value", issue.Value).
		Msg(issue.Message)
}

func (l *Log) Finish(sum Summary) {
	ev := l.logger.Info()
	if !sum.Success {
		ev = l.logger.Error()
	}
	if sum.Err != nil {
		ev = ev.Err(sum.Err)
	}
	ev.Str("id", sum.ID).
		Str("tool", sum.Tool).
		Int("exit_code", sum.ExitCode).
		Int("errors", sum.Errors).
		Int("warnings", sum.Warnings).
		Dur("duration", sum.Duration).
		Bool("success", sum.Success).
		Msg("build finished")
}
