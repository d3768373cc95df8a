package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	Setup("debug")
	logrus.SetOutput(buf)
	t.Cleanup(func() { Setup("info") })
	return buf
}

func TestWithContextAddsRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	WithContext(ctx).WithField("team_id", 7).Info("team created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, float64(7), entry["team_id"])
	assert.Equal(t, "team created", entry["msg"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).WithError(errors.New("boom")).Error("failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "error", entry["level"])
}

func TestSetupLevels(t *testing.T) {
	t.Cleanup(func() { Setup("info") })

	Setup("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Setup("unknown")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
