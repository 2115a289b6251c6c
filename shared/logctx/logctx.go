// Package logctx passes a zap logger through context.Context, so
// long-running recipes can report progress without taking a logger
// parameter every recipe would have to thread along.
package logctx

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From retrieves the logger attached to ctx. A context without one gets
// the no-op logger, so callers never need a nil check.
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
