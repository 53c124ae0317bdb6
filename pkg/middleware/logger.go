package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type LoggerOpt func(*middleware.RequestLoggerConfig)

// WithSkipper excludes requests from logging, e.g. health probes
func WithSkipper(skipper middleware.Skipper) LoggerOpt {
	return func(c *middleware.RequestLoggerConfig) {
		c.Skipper = skipper
	}
}

// Logger logs every request through slog
func Logger(opts ...LoggerOpt) echo.MiddlewareFunc {
	o := defaultOpt()
	for _, opt := range opts {
		opt(&o)
	}

	return middleware.RequestLoggerWithConfig(o)
}

func defaultOpt() middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogLatency:   true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				slog.LogAttrs(context.Background(), slog.LevelInfo, "REQUEST",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
					slog.String("request_id", v.RequestID),
				)
			} else {
				slog.LogAttrs(context.Background(), slog.LevelError, "REQUEST_ERROR",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("request_id", v.RequestID),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}
}
