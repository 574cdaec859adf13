package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, time.UTC)

	log.Info("hello", zap.String("component", "test"), zap.Int("n", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, float64(3), entry["n"])

	ts, ok := entry["ts"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestNew_NilLocation(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, nil)

	log.Error("boom")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["ts"], "Z")
}

func TestNew_DebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, time.UTC)

	log.Debug("hidden")

	assert.Zero(t, buf.Len())
}
