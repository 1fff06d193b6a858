package pattern

// Diagnostics lists the diagnostics reported against one file.
type Diagnostics struct {
	File  string           `json:"file"`
	Items []DiagnosticItem `json:"items"`
}

// DiagnosticItem is one compiler diagnostic.
type DiagnosticItem struct {
	Severity    string `json:"severity"` // "error" or "warning"
	Subcategory string `json:"subcategory,omitempty"`
	Code        string `json:"code"`
	Line        int    `json:"line,omitempty"`
	Column      int    `json:"column,omitempty"`
	Message     string `json:"message"`
}

func (d *Diagnostics) Type() PatternType { return PatternTypeDiagnostics }

// Errors counts the error items.
func (d *Diagnostics) Errors() int {
	n := 0
	for _, it := range d.Items {
		if it.Severity == KindError {
			n++
		}
	}
	return n
}
