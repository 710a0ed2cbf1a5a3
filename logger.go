package bitflag

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitflag-specific context.
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

// WithWidth adds a width field to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// LogWidthChange logs a width change and the migration it performed.
func (l *Logger) LogWidthChange(from, to, words int, err error) {
	if err != nil {
		l.Error("width change failed",
			"from", from,
			"to", to,
			"error", err,
		)
	} else {
		l.Debug("width changed",
			"from", from,
			"to", to,
			"words", words,
		)
	}
}

// LogClearAll logs the release of all storage.
func (l *Logger) LogClearAll(words int) {
	l.Debug("storage cleared",
		"words", words,
	)
}
