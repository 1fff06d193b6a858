// Package detect sniffs input to tell a saved SARIF log from raw compiler
// output.
package detect

import (
	"bytes"
	"encoding/json"

	"github.com/dkoosis/booc/pkg/sarif"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown  Format = iota
	SARIF           // SARIF 2.1.0 JSON document
	Compiler        // line-oriented compiler output
)

func (f Format) String() string {
	switch f {
	case SARIF:
		return "sarif"
	case Compiler:
		return "compiler"
	default:
		return "unknown"
	}
}

// Sniff examines the first bytes of input to determine format. Anything that
// is not JSON is taken as compiler output, since its noise lines are still
// worth forwarding.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}
	if data[0] != '{' {
		return Compiler
	}
	if isSARIF(data) {
		return SARIF
	}
	return Unknown
}

// isSARIF reports whether data starts a SARIF document. Truncated input (a
// peeked prefix) is accepted when the version key shows up before the cut.
func isSARIF(data []byte) bool {
	if json.Valid(data) {
		return sarif.IsSARIF(data)
	}
	return bytes.Contains(data, []byte(`"runs"`)) && bytes.Contains(data, []byte(`"version"`))
}
