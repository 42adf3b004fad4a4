package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer

	log := New("info", "text", &buf)
	log.Info("processing", "rows", 42)

	out := buf.String()
	assert.Contains(t, out, "processing")
	assert.Contains(t, out, "rows=42")
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer

	log := New("info", "json", &buf)
	log.Info("processing", "rows", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "processing", entry["msg"])
	assert.Equal(t, float64(42), entry["rows"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := New("warn", "text", &buf)
	log.Info("hidden")
	log.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer

	log := New("chatty", "text", &buf)
	log.Debug("hidden")
	log.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer

	log := New("info", "text", &buf).With("stage", "normalize")
	log.Info("done")

	assert.Contains(t, buf.String(), "stage=normalize")
}
