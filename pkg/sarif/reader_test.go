package sarif

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// minimalSARIF is the smallest valid SARIF document.
const minimalSARIF = `{"version":"` + Version + `","runs":[{"tool":{"driver":{"name":"booc"}},"results":[]}]}`

func TestRead_ValidDocument(t *testing.T) {
	doc, err := Read(strings.NewReader(minimalSARIF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Version != Version {
		t.Errorf("expected version %s, got %s", Version, doc.Version)
	}
}

func TestRead_ValidWithTrailingWhitespace(t *testing.T) {
	doc, err := Read(strings.NewReader(minimalSARIF + "   \n\t\n  "))
	if err != nil {
		t.Fatalf("trailing whitespace should be accepted, got error: %v", err)
	}
	if doc.Version != Version {
		t.Errorf("expected version %s, got %s", Version, doc.Version)
	}
}

func TestRead_TrailingData(t *testing.T) {
	for _, trailer := range []string{`garbage`, `{"extra":"object"}`} {
		_, err := Read(strings.NewReader(minimalSARIF + trailer))
		if err == nil {
			t.Fatalf("expected error for trailer %q, got nil", trailer)
		}
		if !strings.Contains(err.Error(), "trailing data") {
			t.Errorf("expected trailing data error, got: %v", err)
		}
	}
}

func TestRead_InvalidJSON(t *testing.T) {
	if _, err := Read(strings.NewReader(`not json`)); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestRead_MissingVersion(t *testing.T) {
	if _, err := Read(strings.NewReader(`{"runs":[]}`)); err == nil {
		t.Fatal("expected error for missing version, got nil")
	}
}

func TestReadBytes_RoundTripsBuilderOutput(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder("booc", "dev").
		AddResult("BCE0005", "error", "Unknown identifier: 'x'.", "a.boo", 3, 1).
		SetInvocation("boocNET45.exe a.boo", 1, false)
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	doc, err := ReadBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Runs[0].Results[0].RuleID; got != "BCE0005" {
		t.Errorf("expected BCE0005, got %s", got)
	}
	if got := *doc.Runs[0].Invocations[0].ExitCode; got != 1 {
		t.Errorf("expected exit code 1, got %d", got)
	}
}

func TestDocument_WriteTo_RewritesReadDocument(t *testing.T) {
	doc, err := ReadBytes([]byte(minimalSARIF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("expected %d bytes written, got %d", buf.Len(), n)
	}
	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("re-read written document: %v", err)
	}
	if again.Version != doc.Version || len(again.Runs) != len(doc.Runs) {
		t.Errorf("document changed on rewrite: %+v", again)
	}
}

func TestReadBytes_TrailingGarbage(t *testing.T) {
	if _, err := ReadBytes([]byte(minimalSARIF + `{"extra":true}`)); err == nil {
		t.Fatal("expected error for trailing garbage via ReadBytes, got nil")
	}
}

func TestComputeStatsAndGroupByFile(t *testing.T) {
	doc := NewBuilder("booc", "").
		AddResult("BCE0005", "error", "m", "file:///src/a.boo", 1, 1).
		AddResult("BCW0003", "warning", "m", "src/b.boo", 2, 1).
		AddResult("BCE0004", "error", "m", "src/b.boo", 5, 1).
		AddResult("BCE0000", "error", "m", "", 0, 0).
		Document()

	stats := ComputeStats(doc)
	if stats.TotalIssues != 4 {
		t.Errorf("expected 4 issues, got %d", stats.TotalIssues)
	}
	if stats.ByLevel["error"] != 3 || stats.ByLevel["warning"] != 1 {
		t.Errorf("unexpected level counts: %v", stats.ByLevel)
	}
	if stats.ByFile["/src/a.boo"] != 1 || stats.ByFile["src/b.boo"] != 2 {
		t.Errorf("unexpected file counts: %v", stats.ByFile)
	}

	groups := GroupByFile(doc)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Key != "src/b.boo" || len(groups[0].Results) != 2 {
		t.Errorf("expected busiest file first, got %+v", groups[0])
	}
	if groups[1].Key != "/src/a.boo" || groups[2].Key != "" {
		t.Errorf("expected ties in first-seen order, got %q then %q", groups[1].Key, groups[2].Key)
	}
}

func TestRun_Duration(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	doc := NewBuilder("booc", "").
		SetInvocation("boocNET45.exe a.boo", 0, true).
		SetTimes(start, start.Add(1500*time.Millisecond)).
		Document()

	if got := doc.Runs[0].Duration(); got != 1500*time.Millisecond {
		t.Errorf("expected 1.5s, got %s", got)
	}
	if got := (Run{}).Duration(); got != 0 {
		t.Errorf("expected zero duration without invocation, got %s", got)
	}
}
