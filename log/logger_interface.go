package log

import (
	"context"
	"strings"
)

type contextKey string

const (
	loggerKey contextKey = "betaheaders.logger"
)

var defaultLevel = LevelWarn

// SetDefaultLevel sets the level used by loggers created without one.
func SetDefaultLevel(level Level) {
	defaultLevel = level
}

// GetDefaultLevel returns the level used by loggers created without one.
func GetDefaultLevel() Level {
	return defaultLevel
}

// Logger is the logging interface used throughout the module. It mirrors
// the slog method set so adapters for other libraries stay small.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a Logger that includes the given attributes in each
	// output operation.
	With(args ...any) Logger
}

// WithLogger returns a new context with the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the logger from the given context, or a new logger at the
// default level.
func Ctx(ctx context.Context) Logger {
	if ctx == nil {
		return New(defaultLevel)
	}
	logger, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		return New(defaultLevel)
	}
	return logger
}

// LevelFromString converts a string to a Level. Unknown values map to the
// default level.
func LevelFromString(value string) Level {
	switch strings.ToLower(value) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return defaultLevel
	}
}
