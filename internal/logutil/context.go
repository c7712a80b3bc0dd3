package logutil

import (
	"context"
	"log/slog"

	"github.com/go-logr/logr"
)

type contextKey struct{}

// SloggerInto returns a new context with log stored in it. A logr.Logger
// backed by the same handler is stored alongside it so that code written
// against either API logs to the same place.
func SloggerInto(ctx context.Context, log *slog.Logger) context.Context {
	return logr.NewContext(
		context.WithValue(ctx, contextKey{}, log),
		logr.FromSlogHandler(log.Handler()),
	)
}

// SloggerFrom returns the *slog.Logger from the context,
// or one that discards everything if there is none.
func SloggerFrom(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && log != nil {
		return log
	}

	return slog.New(slog.DiscardHandler)
}
