package pattern

// Leaderboard ranks source files by diagnostic count.
type Leaderboard struct {
	Label      string            `json:"label"`
	MetricName string            `json:"metric_name"`
	Items      []LeaderboardItem `json:"items"`
	TotalCount int               `json:"total_count"` // before truncation to the top N
	ShowRank   bool              `json:"show_rank"`
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name   string  `json:"name"`
	Metric string  `json:"metric"` // formatted, e.g. "2 errors, 1 warning"
	Value  float64 `json:"value"`
	Rank   int     `json:"rank"`
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
