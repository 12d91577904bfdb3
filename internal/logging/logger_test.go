package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(buf, slog.LevelDebug)

	logger.Debug("boom", "error", "disk full")

	assert.Contains(t, buf.String(), "err=\"disk full\"")
	assert.NotContains(t, buf.String(), "error=")
}

func TestLevel(t *testing.T) {
	t.Run("debug flag", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		assert.Equal(t, slog.LevelDebug, Level(true))
		assert.Equal(t, slog.LevelWarn, Level(false))
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "error")
		assert.Equal(t, slog.LevelError, Level(true))
	})
}
