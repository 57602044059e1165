// Package ctxlog carries the run's slog.Logger through context.Context so
// that every conversion stage logs through the logger configured by the CLI.
//
// Stages never write logs to the converter's data stream: the logger in the
// context writes to stderr at warn level unless the user asks for more, and
// without one FromContext falls back to slog.Default, which the commands
// also point at stderr.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
