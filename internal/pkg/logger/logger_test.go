package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Configure(Config{Level: level, Format: FormatJSON, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Format: FormatConsole, Output: os.Stderr}) })
	return &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestConfigureJSON(t *testing.T) {
	buf := captureJSON(t, WarnLevel)

	Info().Msg("dropped")
	l := WithField("course", "11-accounts")
	l.Warn().Msg("kept")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "11-accounts", entry["course"])
}

func TestWithFields(t *testing.T) {
	buf := captureJSON(t, DebugLevel)

	l := WithFields(map[string]interface{}{"brand": "deepjyoti", "mode": "test"})
	l.Debug().Msg("site logger")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "deepjyoti", entry["brand"])
	assert.Equal(t, "test", entry["mode"])
}

func TestPackageLevelWarn(t *testing.T) {
	buf := captureJSON(t, ErrorLevel)

	Warn().Msg("dropped")
	assert.Zero(t, buf.Len())

	Error().Str("path", "x").Msg("kept")
	assert.Equal(t, "error", decodeEntry(t, buf)["level"])
}
