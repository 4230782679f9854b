package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// TraceMiddleware logs the matched route, the acting user and the full error chain
// of every request at debug level. It is a no-op unless env.debug is set; the access
// log itself comes from slog-echo.
type TraceMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewTraceMiddleware creates a new trace middleware
func NewTraceMiddleware(logger *slog.Logger, cfg *config.Config) *TraceMiddleware {
	return &TraceMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle wraps next with tracing when debug mode is on.
func (m *TraceMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.trace(c, start, err)

		return err
	}
}

func (m *TraceMiddleware) trace(c echo.Context, start time.Time, err error) {
	ctx := c.Request().Context()

	fields := []slog.Attr{
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
		slog.String("uri", c.Request().URL.RequestURI()),
		slog.Duration("latency", time.Since(start)),
	}

	// The auth middleware runs inside this one, so the user lives on the echo context.
	if user := deliverycontext.GetUser(c); user != nil {
		fields = append(fields, slog.String("user_id", user.ID.String()))
	}

	if err != nil {
		fields = append(fields, slog.String("error", fmt.Sprintf("%+v", err)))
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, slog.LevelDebug, "Request trace", fields...)
}
