package bitflag

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	arr := mustNew(t, 8, WithLogger(logger.WithWidth(8)))
	require.NoError(t, arr.Set(5, 1))
	require.NoError(t, arr.SetWidth(4))
	require.Error(t, arr.SetWidth(12))
	arr.ClearAll()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var rec map[string]any

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "width changed", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 8, rec["from"])
	assert.EqualValues(t, 4, rec["to"])
	assert.EqualValues(t, 1, rec["words"])
	assert.EqualValues(t, 8, rec["width"])

	rec = nil
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "width change failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.EqualValues(t, 12, rec["to"])
	assert.Contains(t, rec["error"], "invalid width")

	rec = nil
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &rec))
	assert.Equal(t, "storage cleared", rec["msg"])
	assert.EqualValues(t, 1, rec["words"])
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))

	arr := mustNew(t, 4, WithLogger(nil))
	assert.NotNil(t, arr.logger)
	arr.ClearAll()
}

func TestNewLoggerDefaults(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))

	arr := mustNew(t, 4, WithLogLevel(slog.LevelWarn))
	assert.True(t, arr.logger.Enabled(t.Context(), slog.LevelWarn))
	assert.False(t, arr.logger.Enabled(t.Context(), slog.LevelDebug))
}
