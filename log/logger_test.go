package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"debug level", "debug", LevelDebug},
		{"info level", "info", LevelInfo},
		{"warn level", "warn", LevelWarn},
		{"warning alias", "warning", LevelWarn},
		{"error level", "error", LevelError},
		{"uppercase", "DEBUG", LevelDebug},
		{"mixed case", "WaRn", LevelWarn},
		{"invalid level", "invalid", defaultLevel},
		{"empty string", "", defaultLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, LevelFromString(tc.input))
		})
	}
}

func TestNullLogger(t *testing.T) {
	logger := NewNullLogger()

	// These calls should not panic
	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	withLogger := logger.With("context", "value")
	require.IsType(t, &NullLogger{}, withLogger)
}

func TestStructuredLoggerWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelInfo)

	logger.Debug("hidden message")
	logger.Info("negotiated", "betas", "pdfs-2024-09-25")

	out := buf.String()
	require.NotContains(t, out, "hidden message")
	require.Contains(t, out, "negotiated")
	require.Contains(t, out, "betas=pdfs-2024-09-25")
	require.Contains(t, out, "log/logger_test.go")
}

func TestStructuredLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug).With("provider", "anthropic")
	require.IsType(t, &StructuredLogger{}, logger)

	logger.Warn("rate limit exceeded")
	require.Contains(t, buf.String(), "provider=anthropic")
}

func TestContextFunctions(t *testing.T) {
	logger := NewNullLogger()

	ctx := WithLogger(context.Background(), logger)
	require.Equal(t, logger, Ctx(ctx))

	emptyLogger := Ctx(context.Background())
	require.IsType(t, &StructuredLogger{}, emptyLogger)
}

func TestFormatCaller(t *testing.T) {
	require.Equal(t, "main.go:3", formatCaller("main.go", 3))
	require.Equal(t, "anthropic/headers.go:10", formatCaller("/src/providers/anthropic/headers.go", 10))
}
