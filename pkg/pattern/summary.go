package pattern

// Item kinds, used for coloring.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
	KindInfo    = "info"
)

// Summary is the headline of a build: its status and counts.
type Summary struct {
	Label   string        `json:"label"`
	Passed  bool          `json:"passed"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g. "Errors", "Exit code"
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
