package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expectedLogger := NewLogger(TestConfig())
		ctx := ContextWithLogger(t.Context(), expectedLogger)

		actualLogger := FromContext(ctx)

		require.NotNil(t, actualLogger)
		assert.Equal(t, expectedLogger, actualLogger)
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		logger := FromContext(t.Context())

		require.NotNil(t, logger)
		logger.Info("test message from default logger")
	})

	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), LoggerCtxKey, "not a logger")

		logger := FromContext(ctx)

		require.NotNil(t, logger)
	})

	t.Run("Should return default logger when nil logger in context", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), LoggerCtxKey, (Logger)(nil))

		logger := FromContext(ctx)

		require.NotNil(t, logger)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write structured text output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&Config{Level: DebugLevel, Output: &buf})

		logger.Info("resolving task", "task", "classpath")

		out := buf.String()
		assert.Contains(t, out, "resolving task")
		assert.Contains(t, out, "classpath")
	})

	t.Run("Should write JSON output when configured", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})

		logger.Warn("version too old")

		assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
	})

	t.Run("Should suppress messages below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&Config{Level: WarnLevel, Output: &buf})

		logger.Debug("hidden")
		logger.Info("also hidden")

		assert.Empty(t, buf.String())
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should fall back to info for unknown levels", func(t *testing.T) {
		info := InfoLevel
		level := LogLevel("nope")
		assert.Equal(t, info.ToCharmlogLevel(), level.ToCharmlogLevel())
	})
}
