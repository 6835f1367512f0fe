package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLoggerFansOut(t *testing.T) {
	var console, file bytes.Buffer
	logger := NewLogger(slog.LevelInfo, &console, &file)

	logger.Debug("hidden")
	logger.With("device", "ina219").Info("Generated C header", "registers", 6)

	for _, buf := range []*bytes.Buffer{&console, &file} {
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "device=ina219")
		assert.Contains(t, buf.String(), "registers=6")
	}
}

func TestNewLoggerTraceLevel(t *testing.T) {
	var console bytes.Buffer
	logger := NewLogger(LevelTrace, &console, nil)
	logger.Log(context.Background(), LevelTrace, "very verbose")
	assert.Contains(t, console.String(), "very verbose")
}

func TestMultiHandlerGroups(t *testing.T) {
	var a, b bytes.Buffer
	logger := NewLogger(slog.LevelInfo, &a, &b).WithGroup("schema")
	logger.Info("loaded", "path", "x.yaml")
	assert.Contains(t, a.String(), "schema.path=x.yaml")
	assert.Contains(t, b.String(), "schema.path=x.yaml")
}

func TestSetupLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ridl.log")
	logger, closers, err := SetupLogger("warn", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Info("skipped")
	logger.Warn("kept")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "skipped")
}

func TestSetupLoggerBadPath(t *testing.T) {
	_, _, err := SetupLogger("info", filepath.Join(t.TempDir(), "missing", "dir", "ridl.log"))
	assert.Error(t, err)
}
