// Package context carries the per-request ID and logger from the HTTP layer down to the
// relay service, the dispatcher and the event publisher.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echoRequestIDKey stores the request ID on echo.Context for the access log.
const echoRequestIDKey = "relay.request_id"

// HeaderXRequestID is read from callers and echoed on every response.
const HeaderXRequestID = echo.HeaderXRequestID

// SetRequestID records the request ID on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestID returns the ID assigned by the request ID middleware, or "" outside of it.
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// Logger returns the request-scoped logger of c, falling back when the middleware did not run.
func Logger(c echo.Context, fallback *slog.Logger) *slog.Logger {
	return GetLoggerOrDefault(c.Request().Context(), fallback)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID of ctx, or "" for background work.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the logger stored in ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
