// Package live shows build progress in the terminal while the compiler runs.
package live

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/render"
	"github.com/dkoosis/booc/pkg/report"
)

type diagnosticMsg diag.Record
type messageMsg invoke.Line
type issueMsg booc.Issue
type finishMsg report.Summary

// Model is the bubbletea model of the progress line.
type Model struct {
	label   string
	theme   render.Theme
	spinner spinner.Model
	started time.Time
	elapsed time.Duration
	width   int

	errors   int
	warnings int
	lines    int
	last     string
	lastErr  bool

	done    bool
	summary report.Summary
}

// NewModel returns a model labelled with the tool being run.
func NewModel(label string, theme render.Theme) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Primary),
	)
	return Model{label: label, theme: theme, spinner: sp, started: time.Now(), width: 80}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		m.elapsed = time.Since(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case diagnosticMsg:
		rec := diag.Record(msg)
		if rec.IsError() {
			m.errors++
		} else {
			m.warnings++
		}
		m.last, m.lastErr = rec.String(), rec.IsError()
	case messageMsg:
		m.lines++
	case issueMsg:
		m.last, m.lastErr = "booc: warning "+booc.Issue(msg).String(), false
	case finishMsg:
		m.done = true
		m.summary = report.Summary(msg)
		m.errors, m.warnings = m.summary.Errors, m.summary.Warnings
		m.elapsed = m.summary.Duration
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		icon, style := m.theme.Icons.Pass, m.theme.Success
		if !m.summary.Success {
			icon, style = m.theme.Icons.Fail, m.theme.Error
		}
		return style.Render(fmt.Sprintf("%s %s %s", icon, m.label, m.counts())) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.spinner.View())
	sb.WriteString(" ")
	sb.WriteString(m.theme.Bold.Render(m.label))
	sb.WriteString(" ")
	sb.WriteString(m.theme.Muted.Render(m.counts()))
	sb.WriteString("\n")
	if m.last != "" {
		style := m.theme.Warning
		if m.lastErr {
			style = m.theme.Error
		}
		sb.WriteString("  ")
		sb.WriteString(style.Render(runewidth.Truncate(m.last, max(m.width-2, 10), "…")))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) counts() string {
	return fmt.Sprintf("%d error(s), %d warning(s), %d line(s) [%s]",
		m.errors, m.warnings, m.lines, m.elapsed.Round(100*time.Millisecond))
}

// Errors returns the number of error diagnostics seen.
func (m Model) Errors() int { return m.errors }

// Warnings returns the number of warning diagnostics seen.
func (m Model) Warnings() int { return m.warnings }

// Done reports whether the build has finished.
func (m Model) Done() bool { return m.done }
