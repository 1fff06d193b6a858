package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/booc/internal/logging"
)

func TestNew_WritesJSONLines_When_NotATerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New(&buf, logging.Options{Level: zerolog.InfoLevel})
	log.Debug().Msg("hidden")
	log.Info().Str("tool", "booc").Msg("spawn")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "booc", entry["tool"])
	assert.Equal(t, "spawn", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_WritesConsoleFormat_When_Forced(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console := true
	log := logging.New(&buf, logging.Options{Level: zerolog.DebugLevel, Console: &console, NoColor: true})
	log.Debug().Int("exit_code", 1).Msg("exited")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "exited")
	assert.Contains(t, out, "exit_code=1")
	assert.NotContains(t, out, "\x1b[")
}

func TestIsTerminal_FalseForBuffers(t *testing.T) {
	t.Parallel()

	assert.False(t, logging.IsTerminal(&bytes.Buffer{}))
}
