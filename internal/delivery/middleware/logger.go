package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug || c.Request().URL.Path == "/health" {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, time.Since(start), err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	status := responseStatus(c, err)

	attrs := []slog.Attr{
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if route := c.Path(); route != "" {
		attrs = append(attrs, slog.String("route", route))
	}
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		attrs = append(attrs,
			slog.String("subject_id", identity.SubjectID.String()),
			slog.String("role", string(identity.Role)),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	// The request logger already carries request_id, method and path.
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), level, "HTTP request", attrs...)
}

// responseStatus predicts the status the error handler will write, since it
// runs after this middleware returns.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
