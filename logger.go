package halfvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with halfvec-specific helpers so that every
// operation logs with consistent field names.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithFormat adds a format field to the logger.
func (l *Logger) WithFormat(f Format) *Logger {
	return &Logger{
		Logger: l.Logger.With("format", f.String()),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogEncode logs a batch encode.
func (l *Logger) LogEncode(count, dimension int, err error) {
	if err != nil {
		l.Error("encode failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.Debug("encode completed",
		"count", count,
		"dimension", dimension,
	)
}

// LogDecode logs a decode of one or more buffers.
func (l *Logger) LogDecode(count int, err error) {
	if err != nil {
		l.Error("decode failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.Debug("decode completed",
		"count", count,
	)
}

// LogVerify logs the outcome of a round-trip verification.
func (l *Logger) LogVerify(checked, failed int, maxAbsError float32) {
	if failed > 0 {
		l.Warn("verification found mismatches",
			"checked", checked,
			"failed", failed,
			"max_abs_error", maxAbsError,
		)
		return
	}
	l.Info("verification passed",
		"checked", checked,
		"max_abs_error", maxAbsError,
	)
}
