package sarif

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dkoosis/booc/pkg/diag"
)

// Builder constructs a single-run SARIF document.
type Builder struct {
	doc *Document
}

// NewBuilder creates a builder for the given tool.
func NewBuilder(toolName, toolVersion string) *Builder {
	return &Builder{
		doc: &Document{
			Version: Version,
			Schema:  Schema,
			Runs: []Run{{
				Tool:    Tool{Driver: Driver{Name: toolName, Version: toolVersion}},
				Results: []Result{},
			}},
		},
	}
}

// FromRecords returns a builder holding one result per record, in order.
func FromRecords(toolName, toolVersion string, recs []diag.Record) *Builder {
	b := NewBuilder(toolName, toolVersion)
	for _, rec := range recs {
		b.AddRecord(rec)
	}
	return b
}

func (b *Builder) run() *Run { return &b.doc.Runs[0] }

// AddResult adds a diagnostic result. A location is attached when file is
// set; the region only when line is positive.
func (b *Builder) AddResult(ruleID, level, message, file string, line, col int) *Builder {
	r := Result{
		RuleID:  ruleID,
		Level:   level,
		Message: Message{Text: message},
	}
	if file != "" {
		loc := Location{PhysicalLocation: PhysicalLocation{ArtifactLocation: ArtifactLocation{URI: file}}}
		if line > 0 {
			loc.PhysicalLocation.Region = &Region{StartLine: line, StartColumn: col}
		}
		r.Locations = []Location{loc}
	}
	b.run().Results = append(b.run().Results, r)
	return b
}

// AddRecord adds rec as a result. The placeholder file of position-less
// errors is not emitted as a location.
func (b *Builder) AddRecord(rec diag.Record) *Builder {
	file := rec.File
	if file == diag.DefaultErrorFile && !rec.HasPosition() {
		file = ""
	}
	b.AddResult(rec.Code, string(rec.Severity), rec.Message, file, rec.Line, rec.Column)
	if rec.Subcategory != "" {
		results := b.run().Results
		results[len(results)-1].Properties = map[string]string{"subcategory": rec.Subcategory}
	}
	return b
}

// SetInvocation records the command line and outcome of the run.
func (b *Builder) SetInvocation(commandLine string, exitCode int, success bool) *Builder {
	code := exitCode
	b.run().Invocations = []Invocation{{
		CommandLine:         commandLine,
		ExitCode:            &code,
		ExecutionSuccessful: success,
	}}
	return b
}

// SetTimes records when the run started and ended. It has no effect before
// SetInvocation.
func (b *Builder) SetTimes(start, end time.Time) *Builder {
	if invs := b.run().Invocations; len(invs) > 0 {
		invs[0].StartTimeUTC = start.UTC().Format(time.RFC3339Nano)
		invs[0].EndTimeUTC = end.UTC().Format(time.RFC3339Nano)
	}
	return b
}

// SetGUID stamps the run with an invocation ID.
func (b *Builder) SetGUID(guid string) *Builder {
	b.run().AutomationDetails = &AutomationDetails{ID: "booc/" + guid, GUID: guid}
	return b
}

// Document returns the constructed document.
func (b *Builder) Document() *Document {
	return b.doc
}

// WriteTo writes the document as indented JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	return b.doc.WriteTo(w)
}

// WriteTo writes d as indented JSON to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
