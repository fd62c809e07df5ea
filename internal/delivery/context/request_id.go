// Package context provides helpers for passing request-scoped values
// through context.Context between the delivery and usecase layers.
package context

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	loggerKey    contextKey = "logger"
)

// WithRequestID returns a new context carrying the given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts the request id from the context, if present.
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)

	return requestID, ok
}

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger extracts the request-scoped logger from the context, if present.
func GetLogger(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)

	return logger, ok
}

// GetLoggerOrDefault extracts the request-scoped logger, falling back to the
// provided default when none is attached.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := GetLogger(ctx); ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}

	return slog.Default()
}
