package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext returns the request-scoped logger, or the default logger
// when ctx is nil or carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := LoggerFromContext(ctx); ok {
		return l
	}

	return defaultLogger
}

// LoggerFromContext is FromContext without the fallback.
func LoggerFromContext(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}

	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)

	return l, ok && l != nil
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithRequestID attaches request_id to the context logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, "request_id", requestID)
}

// WithTraceID attaches trace_id to the context logger.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return with(ctx, "trace_id", traceID)
}

// WithCorrelationID attaches correlation_id to the context logger.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return with(ctx, "correlation_id", correlationID)
}

func with(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}

// SetDefault sets the fallback logger and slog's global default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
