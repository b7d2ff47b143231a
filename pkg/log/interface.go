// Package log provides the structured logging layer used across treekit.
//
// The package defines a minimal, slog-compatible Logger interface plus the
// standard attribute keys for traversal operations, so the rendering and
// bulk-walk paths emit logs with consistent field names. The default
// implementation is backed by log/slog with a handler that lifts
// cockroachdb/errors stack traces into a dedicated attribute.
package log

import "context"

// Logger is a structured logging interface compatible with log/slog. Fields
// are alternating key-value pairs, as in slog's variadic methods.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. Pass the error with ErrAttr so
	// the handler can attach its stack trace.
	Error(msg string, fields ...any)

	// With returns a Logger that includes the given fields in every
	// subsequent record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given
	// level, allowing callers to skip expensive field construction.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level with values compatible with slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
