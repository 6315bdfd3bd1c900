package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewLogHandler(&buf, slog.LevelInfo, "json", false)
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Debug("hidden")
	logger.Info("fetched", "items", 9)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetched", entry["msg"])
	assert.InDelta(t, 9, entry["items"], 0)
}

func TestNewLogHandler_ConsoleWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewLogHandler(&buf, slog.LevelDebug, "console", false)
	require.NoError(t, err)

	slog.New(handler).Debug("retrying", "attempt", 2)

	out := buf.String()
	assert.Contains(t, out, "retrying")
	assert.Contains(t, out, "attempt=2")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewLogHandler_UnknownFormat(t *testing.T) {
	_, err := NewLogHandler(&bytes.Buffer{}, slog.LevelInfo, "xml", false)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	require.NoError(t, SetupLogger(&buf, slog.LevelDebug, "json", false))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogError(t *testing.T) {
	buf := captureDefault(t)

	LogError(errors.New("status 500"), "Skip options request rejected", Fields{"status": 500})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "Skip options request rejected", entry["msg"])
	assert.Equal(t, "status 500", entry["error"])
	assert.InDelta(t, 500, entry["status"], 0)
}

func TestLogDebug(t *testing.T) {
	buf := captureDefault(t)

	LogDebug("Ignored selection", Fields{"label": "Select 20 Yard Skip (Not Available)"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "Select 20 Yard Skip (Not Available)", entry["label"])
}
