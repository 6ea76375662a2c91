package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer session tokens and authorizes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate requires a valid bearer token. A missing token is 401, a rejected one 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request())
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.verify(c, token)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// OptionalAuthenticate attaches the caller when a valid token is present and never rejects.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c.Request()); ok {
			if identity, err := m.verify(c, token); err == nil {
				deliverycontext.SetIdentity(c, identity)
			}
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if identity.Role != role {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) verify(c echo.Context, token string) (*entity.Identity, error) {
	claims, err := m.tokenSvc.Verify(token)
	if err != nil {
		var tokenErr *service.TokenError
		if errors.As(err, &tokenErr) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Token rejected", slog.String("reason", string(tokenErr.Reason)))
		}

		return nil, err
	}

	return claims.Identity(), nil
}

func bearerToken(req *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), bearerPrefix)
	token = strings.TrimSpace(token)

	return token, ok && token != ""
}

// GetIdentity returns the caller attached by Authenticate or OptionalAuthenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}
