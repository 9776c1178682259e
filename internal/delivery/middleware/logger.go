package middleware

import (
	"context"
	"log/slog"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// LoggerMiddleware writes one access log line per request
type LoggerMiddleware struct {
	logger  *slog.Logger
	debug   bool
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware. Successful requests are only
// logged when env.debug is set; client and server errors are always logged.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	m := &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
	m.handler = echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:        true,
		LogURIPath:       true,
		LogStatus:        true,
		LogLatency:       true,
		LogRemoteIP:      true,
		LogUserAgent:     true,
		LogContentLength: true,
		LogResponseSize:  true,
		LogError:         true,
		HandleError:      true,
		LogValuesFunc:    m.logValues,
	})

	return m
}

// Handle wraps next with the echo request logger emitting slog records
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}

func (m *LoggerMiddleware) logValues(c echo.Context, v echomiddleware.RequestLoggerValues) error {
	level := slog.LevelInfo
	switch {
	case v.Status >= 500:
		level = slog.LevelError
	case v.Status >= 400:
		level = slog.LevelWarn
	case !m.debug:
		return nil
	}

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.RequestID(c)),
		slog.String("method", v.Method),
		slog.String("uri", v.URIPath),
		slog.Int("status", v.Status),
		slog.Duration("latency", v.Latency),
		slog.String("remote_ip", v.RemoteIP),
		slog.String("user_agent", v.UserAgent),
		slog.String("bytes_in", v.ContentLength),
		slog.Int64("bytes_out", v.ResponseSize),
	}
	if v.Error != nil {
		attrs = append(attrs, slog.Any("error", v.Error))
	}

	m.logger.LogAttrs(context.Background(), level, "HTTP Request", attrs...)

	return nil
}
