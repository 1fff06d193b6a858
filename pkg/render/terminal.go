package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/booc/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		if s := t.renderOne(p); s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Leaderboard:
		return t.renderLeaderboard(v)
	case *pattern.Diagnostics:
		return t.renderDiagnostics(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	style := t.theme.Success
	if !s.Passed {
		style = t.theme.Error
	}
	sb.WriteString(style.Inherit(t.theme.Bold).Render(s.Label))
	sb.WriteString("\n")
	for _, m := range s.Metrics {
		icon, st := t.iconStyle(m.Kind)
		sb.WriteString("  ")
		sb.WriteString(st.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderLeaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	header := l.Label
	if l.TotalCount > len(l.Items) {
		header += fmt.Sprintf(" (top %d of %d)", len(l.Items), l.TotalCount)
	}
	sb.WriteString(t.theme.Bold.Render(header))
	sb.WriteString("\n")

	maxName, maxMetric := 0, 0
	for _, item := range l.Items {
		maxName = max(maxName, runewidth.StringWidth(item.Name))
		maxMetric = max(maxMetric, runewidth.StringWidth(item.Metric))
	}
	maxName = min(maxName, t.width/2)

	for _, item := range l.Items {
		sb.WriteString("  ")
		if l.ShowRank {
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%2d. ", item.Rank)))
		}
		sb.WriteString(t.theme.Primary.Render(padRight(truncate(item.Name, maxName), maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Warning.Render(padLeft(item.Metric, maxMetric)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderDiagnostics(d *pattern.Diagnostics) string {
	if len(d.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(fileLabel(d.File)))
	sb.WriteString(t.theme.Muted.Render(fmt.Sprintf(" (%d)", len(d.Items))))
	sb.WriteString("\n")

	positions := make([]string, len(d.Items))
	maxPos, maxCode := 0, 0
	for i, it := range d.Items {
		if it.Line > 0 {
			positions[i] = fmt.Sprintf("%d:%d", it.Line, it.Column)
		}
		maxPos = max(maxPos, len(positions[i]))
		maxCode = max(maxCode, len(it.Code))
	}

	// icon, two spaces of indent and the separators between columns
	msgWidth := max(t.width-maxPos-maxCode-8, 20)
	for i, it := range d.Items {
		icon, style := t.iconStyle(it.Severity)
		sb.WriteString("  ")
		sb.WriteString(style.Render(icon))
		sb.WriteString(" ")
		sb.WriteString(t.theme.Location.Render(padLeft(positions[i], maxPos)))
		sb.WriteString(" ")
		sb.WriteString(style.Render(padRight(it.Code, maxCode)))
		sb.WriteString(" ")
		msg := it.Message
		if it.Subcategory != "" {
			msg = it.Subcategory + ": " + msg
		}
		sb.WriteString(truncate(msg, msgWidth))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case pattern.KindSuccess:
		return t.theme.Icons.Pass, t.theme.Success
	case pattern.KindError:
		return t.theme.Icons.Fail, t.theme.Error
	case pattern.KindWarning:
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
