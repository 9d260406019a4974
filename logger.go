package rawkit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rawkit-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithElemType adds the element type name to the logger.
func (l *Logger) WithElemType(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("elem_type", name),
	}
}

// WithElemSize adds the element size in bytes to the logger.
func (l *Logger) WithElemSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("elem_size", size),
	}
}

// LogGrow logs a buffer growth.
func (l *Logger) LogGrow(oldCap, newCap, bytes int) {
	l.Debug("buffer grown",
		"old_cap", oldCap,
		"new_cap", newCap,
		"bytes", bytes,
	)
}

// LogReserveFailure logs a failed reservation before it is escalated.
func (l *Logger) LogReserveFailure(length, additional int, err error) {
	l.Error("reserve failed",
		"len", length,
		"additional", additional,
		"error", err,
	)
}

// LogRelease logs a buffer release.
func (l *Logger) LogRelease(capacity, bytes int) {
	l.Debug("buffer released",
		"cap", capacity,
		"bytes", bytes,
	)
}
