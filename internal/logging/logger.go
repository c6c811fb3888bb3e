// Package logging defines a minimal structured-logging interface used across
// the project, with slog and zap implementations.
package logging

import (
	"context"
	"fmt"
	"io"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "weather fetched", "city", city, "status", code)
type Logger interface {
	// Debug logs request-level detail that is noise in normal operation.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger writing to w. backend selects the implementation
// (BackendSlog or BackendZap); level is one of debug, info, warn, error.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch backend {
	case "", BackendSlog:
		return newSlogText(level, w)
	case BackendZap:
		return newZapConsole(level, w)
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
