// Package pattern defines the render-neutral shapes a build result is shown
// in. Patterns hold data; renderers decide presentation.
package pattern

// PatternType identifies the kind of pattern.
type PatternType string

const (
	PatternTypeSummary     PatternType = "summary"
	PatternTypeLeaderboard PatternType = "leaderboard"
	PatternTypeDiagnostics PatternType = "diagnostics"
)

// Pattern is implemented by every pattern.
type Pattern interface {
	Type() PatternType
}
