package bitarray

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bit array specific fields.
// The core never logs; tools built on the package (such as cmd/bitarray)
// use Logger to report the operations they run.
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
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOperation adds an op field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogOperation logs the outcome of an operation that produced a bit array
// of the given size.
func (l *Logger) LogOperation(ctx context.Context, op string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "operation failed",
			"op", op,
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "operation completed",
			"op", op,
			"size", size,
		)
	}
}

// LogBits logs a bit array at debug level.
func (l *Logger) LogBits(ctx context.Context, msg string, bits *BitArray) {
	l.DebugContext(ctx, msg,
		"size", bits.Size(),
		"count", bits.Count(),
		"bits", bits.String(),
	)
}
