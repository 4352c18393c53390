package crcspeed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with crcspeed-specific helpers.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWidth adds a CRC width field to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithName adds a name field to the logger (useful for tagging variants).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogTableBuild logs a completed table construction.
func (l *Logger) LogTableBuild(width int, order string, msbFirst, reversed bool, elapsed time.Duration) {
	l.Debug("crc table built",
		"width", width,
		"byte_order", order,
		"msb_first", msbFirst,
		"reversed", reversed,
		"elapsed", elapsed,
	)
}

// LogRun logs one timed CRC run. Tag the logger with WithName and
// WithWidth to identify the variant.
func (l *Logger) LogRun(ctx context.Context, size int, crc uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "crc run failed",
			"bytes", size,
			"crc", crc,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "crc run completed",
			"bytes", size,
			"crc", crc,
			"elapsed", elapsed,
		)
	}
}
