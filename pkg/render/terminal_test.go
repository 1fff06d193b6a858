package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_RenderBuild(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(buildPatterns())

	assert.Contains(t, out, "BUILD FAILED: booc")
	assert.Contains(t, out, "  x Errors: 2")
	assert.Contains(t, out, "  ! Warnings: 1")
	assert.Contains(t, out, " 1. src/Foo.boo  1 error, 1 warning")
	assert.Contains(t, out, "src/Foo.boo (2)")
	assert.Contains(t, out, "  x 12:5 BCE0005 Unknown identifier: 'bar'.")
	assert.Contains(t, out, "  !  3:1 BCW0003 Unused local variable 'x'.")
	assert.Contains(t, out, "(no file) (1)")
	assert.Contains(t, out, "  x  BCE0000 fatal: Out of memory")
}

func TestTerminal_TruncatesLongMessages(t *testing.T) {
	patterns := buildPatterns()[2:3]
	out := NewTerminal(MonoTheme(), 40).Render(patterns)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40, "line too wide: %q", line)
	}
	assert.Contains(t, out, "...")
}

func TestPad_UsesDisplayWidth(t *testing.T) {
	assert.Equal(t, "日本  ", padRight("日本", 6))
	assert.Equal(t, "  日本", padLeft("日本", 6))
	assert.Equal(t, "abc", padRight("abc", 2))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("anything").Name)
}

func TestJSON_RenderBuild(t *testing.T) {
	out := NewJSON().Render(buildPatterns())

	var doc struct {
		Version  string   `json:"version"`
		Passed   bool     `json:"passed"`
		Errors   int      `json:"errors"`
		Warnings int      `json:"warnings"`
		Files    []string `json:"files"`
		Patterns []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "1", doc.Version)
	assert.False(t, doc.Passed)
	assert.Equal(t, 2, doc.Errors)
	assert.Equal(t, 1, doc.Warnings)
	assert.Equal(t, []string{"src/Foo.boo"}, doc.Files)
	require.Len(t, doc.Patterns, 4)
	assert.Equal(t, "summary", doc.Patterns[0].Type)
	assert.Equal(t, "leaderboard", doc.Patterns[1].Type)
	assert.Equal(t, "diagnostics", doc.Patterns[2].Type)
	assert.Contains(t, string(doc.Patterns[2].Data), "BCE0005")
}
