package live

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/booc/pkg/booc"
	"github.com/dkoosis/booc/pkg/diag"
	"github.com/dkoosis/booc/pkg/invoke"
	"github.com/dkoosis/booc/pkg/render"
	"github.com/dkoosis/booc/pkg/report"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_CountsDiagnostics(t *testing.T) {
	t.Parallel()

	m := NewModel("booc-4.0", render.MonoTheme())
	m, _ = update(t, m, diagnosticMsg{Severity: diag.SeverityWarning, Code: "BCW0011", File: "src/A.boo", Line: 2, Column: 1, Message: "unused"})
	m, _ = update(t, m, diagnosticMsg{Severity: diag.SeverityError, Code: "BCE0005", File: "src/A.boo", Line: 7, Column: 9, Message: "Unknown identifier: 'x'."})
	m, _ = update(t, m, messageMsg{Text: "Boo Compiler version 0.9.4.9", Stream: invoke.Stdout})

	assert.Equal(t, 1, m.Errors())
	assert.Equal(t, 1, m.Warnings())
	assert.False(t, m.Done())

	view := m.View()
	assert.Contains(t, view, "booc-4.0")
	assert.Contains(t, view, "1 error(s), 1 warning(s), 1 line(s)")
	assert.Contains(t, view, "src/A.boo(7,9): error BCE0005: Unknown identifier: 'x'.")
	assert.NotContains(t, view, "\x1b[")
}

func TestModel_ShowsIssues(t *testing.T) {
	t.Parallel()

	m := NewModel("booc", render.MonoTheme())
	m, _ = update(t, m, issueMsg{Code: booc.IssueInvalidVerbosity, Message: `invalid verbosity "Loud"`})
	assert.Contains(t, m.View(), "booc: warning")
	assert.Contains(t, m.View(), "Loud")
}

func TestModel_TruncatesLastLineToWidth(t *testing.T) {
	t.Parallel()

	m := NewModel("booc", render.MonoTheme())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	m, _ = update(t, m, diagnosticMsg{Severity: diag.SeverityError, Code: "BCE0000", File: "BOOC", Message: strings.Repeat("x", 100)})

	lines := strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.LessOrEqual(t, len([]rune(lines[1])), 30)
	assert.True(t, strings.HasSuffix(lines[1], "…"))
}

func TestModel_QuitsOnFinish(t *testing.T) {
	t.Parallel()

	m := NewModel("booc", render.MonoTheme())
	m, cmd := update(t, m, finishMsg{Errors: 2, Success: false, Duration: 1500 * time.Millisecond})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Done())
	assert.Equal(t, "x booc 2 error(s), 0 warning(s), 0 line(s) [1.5s]\n", m.View())

	// Spinner ticks after the end no longer reschedule.
	_, cmd = update(t, m, m.spinner.Tick())
	assert.Nil(t, cmd)
}

func TestModel_SuccessView(t *testing.T) {
	t.Parallel()

	m := NewModel("booc", render.MonoTheme())
	m, _ = update(t, m, finishMsg(report.Summary{Success: true}))
	assert.True(t, strings.HasPrefix(m.View(), "+ booc"))
}
