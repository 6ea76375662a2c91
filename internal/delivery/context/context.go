// Package context carries per-request values between echo handlers and the
// usecase layer: the request id, a request-scoped logger and the verified caller.
package context

import (
	"context"
	"log/slog"

	"cafe/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
	keyIdentity  key = "identity"

	// HeaderXRequestID is read from the client and echoed on every response.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request id middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestIDFromContext is the usecase-side view of GetRequestID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback
// outside of a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity attaches the verified caller to the echo context and to the
// request context seen by usecases.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(keyIdentity), identity)
	ctx := context.WithValue(c.Request().Context(), keyIdentity, identity)
	c.SetRequest(c.Request().WithContext(ctx))
}

func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(keyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}

// IdentityFromContext is the usecase-side view of GetIdentity.
func IdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(keyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}
