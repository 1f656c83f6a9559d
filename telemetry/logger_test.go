package telemetry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initLogger replaces the default logger, so these tests restore it and do
// not run in parallel.
func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func decodeLines(t *testing.T, s string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestInitLogger_Levels(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	logger, closeFn := initLogger(&buf, false, "")
	require.NoError(t, closeFn())

	logger.Debug("hidden")
	logger.Info("shown", "rounds", 3)

	lines := decodeLines(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.EqualValues(t, 3, lines[0]["rounds"])
	assert.Same(t, logger, slog.Default())
}

func TestInitLogger_Debug(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	logger, _ := initLogger(&buf, true, "")
	logger.Debug("round finished", "round", 1)

	lines := decodeLines(t, buf.String())
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG", lines[0]["level"])
}

func TestInitLogger_LogFile(t *testing.T) {
	restoreDefault(t)

	path := filepath.Join(t.TempDir(), "diperf.log")
	var buf bytes.Buffer
	logger, closeFn := initLogger(&buf, false, path)

	logger.With("library", "dig").WithGroup("run").Info("benchmark run started", "rounds", 2)
	require.NoError(t, closeFn())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, out := range []string{buf.String(), string(raw)} {
		lines := decodeLines(t, out)
		require.Len(t, lines, 1)
		assert.Equal(t, "dig", lines[0]["library"])
		assert.Equal(t, map[string]any{"rounds": float64(2)}, lines[0]["run"])
	}
}

func TestInitLogger_BadLogFileFallsBackToStderrHandler(t *testing.T) {
	restoreDefault(t)

	path := filepath.Join(t.TempDir(), "missing", "diperf.log")
	var buf bytes.Buffer
	logger, closeFn := initLogger(&buf, false, path)
	require.NoError(t, closeFn())

	logger.Info("still logging")

	lines := decodeLines(t, buf.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "failed to open log file", lines[0]["msg"])
	assert.Equal(t, "still logging", lines[1]["msg"])
}

func TestMultiHandler_SkipsDisabledHandlers(t *testing.T) {
	var info, debug bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}
	logger := slog.New(h)

	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
	logger.Debug("only debug")

	assert.Empty(t, info.String())
	assert.Contains(t, debug.String(), "only debug")
}
