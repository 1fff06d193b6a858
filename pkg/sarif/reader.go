package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// ReadBytes parses a SARIF document held in memory.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// Read parses exactly one SARIF document from r. Anything but whitespace
// after the document is an error.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode sarif: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode sarif: trailing data after document")
	}
	if doc.Version == "" {
		return nil, errors.New("missing sarif version")
	}
	return &doc, nil
}

// IsSARIF reports whether data looks like a SARIF document.
func IsSARIF(data []byte) bool {
	var probe struct {
		Version string            `json:"version"`
		Runs    []json.RawMessage `json:"runs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Version != "" && probe.Runs != nil
}

// NormalizePath strips a file:// scheme from an artifact URI.
func NormalizePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

// Duration returns the wall time of the run's first invocation, or zero
// when the times are missing.
func (r Run) Duration() time.Duration {
	if len(r.Invocations) == 0 {
		return 0
	}
	start, err1 := time.Parse(time.RFC3339Nano, r.Invocations[0].StartTimeUTC)
	end, err2 := time.Parse(time.RFC3339Nano, r.Invocations[0].EndTimeUTC)
	if err1 != nil || err2 != nil {
		return 0
	}
	return end.Sub(start)
}

// Line returns the start line of the result's first location, or zero.
func (r Result) Line() int {
	if len(r.Locations) == 0 || r.Locations[0].PhysicalLocation.Region == nil {
		return 0
	}
	return r.Locations[0].PhysicalLocation.Region.StartLine
}

// Col returns the start column of the result's first location, or zero.
func (r Result) Col() int {
	if len(r.Locations) == 0 || r.Locations[0].PhysicalLocation.Region == nil {
		return 0
	}
	return r.Locations[0].PhysicalLocation.Region.StartColumn
}

// File returns the normalized URI of the result's first location, or "".
func (r Result) File() string {
	if len(r.Locations) == 0 {
		return ""
	}
	return NormalizePath(r.Locations[0].PhysicalLocation.ArtifactLocation.URI)
}

// Stats aggregates results of a document.
type Stats struct {
	TotalIssues int
	ByLevel     map[string]int
	ByRule      map[string]int
	ByFile      map[string]int
}

// ComputeStats counts results by level, rule and file.
func ComputeStats(doc *Document) Stats {
	stats := Stats{
		ByLevel: make(map[string]int),
		ByRule:  make(map[string]int),
		ByFile:  make(map[string]int),
	}
	for _, run := range doc.Runs {
		for _, result := range run.Results {
			stats.TotalIssues++
			stats.ByLevel[result.Level]++
			stats.ByRule[result.RuleID]++
			if file := result.File(); file != "" {
				stats.ByFile[file]++
			}
		}
	}
	return stats
}

// GroupedResults holds the results reported against one file.
type GroupedResults struct {
	Key     string
	Results []Result
}

// GroupByFile groups results by file, busiest file first and ties in order
// of first appearance. Results without a location are grouped under "".
func GroupByFile(doc *Document) []GroupedResults {
	byFile := make(map[string][]Result)
	var order []string
	for _, run := range doc.Runs {
		for _, result := range run.Results {
			file := result.File()
			if _, seen := byFile[file]; !seen {
				order = append(order, file)
			}
			byFile[file] = append(byFile[file], result)
		}
	}

	groups := make([]GroupedResults, 0, len(order))
	for _, file := range order {
		groups = append(groups, GroupedResults{Key: file, Results: byFile[file]})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Results) > len(groups[j].Results)
	})
	return groups
}
