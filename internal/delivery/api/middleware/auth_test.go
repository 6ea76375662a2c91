package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/service"
	mockService "cafe/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

// identityEcho echoes the attached identity's email, or "anonymous".
func identityEcho(c echo.Context) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return c.String(http.StatusOK, "anonymous")
	}

	fromCtx, ok := deliverycontext.IdentityFromContext(c.Request().Context())
	if !ok || fromCtx != identity {
		return c.String(http.StatusInternalServerError, "identity missing from request context")
	}

	return c.String(http.StatusOK, identity.Email)
}

func serve(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	vendorClaims := &service.TokenClaims{SubjectID: uuid.New(), Email: "v@example.com", Role: entity.RoleVendor}

	tests := []struct {
		name       string
		header     string
		setup      func(*mockService.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No token provided",
		},
		{
			name:       "missing bearer prefix",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No token provided",
		},
		{
			name:       "empty bearer token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No token provided",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().Verify("expired").Return(nil, &service.TokenError{Reason: service.TokenExpired})
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "Invalid token",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().Verify("good").Return(vendorClaims, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "v@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			mw := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

			e := newTestEcho()
			e.GET("/", identityEcho, mw.Authenticate)

			rec := serve(e, tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate_NeverRejects(t *testing.T) {
	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().Verify("bad").Return(nil, &service.TokenError{Reason: service.TokenMalformed})
	tokens.EXPECT().Verify("good").Return(&service.TokenClaims{Email: "u@example.com", Role: entity.RoleUser}, nil)
	mw := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET("/", identityEcho, mw.OptionalAuthenticate)

	for header, want := range map[string]string{
		"":            "anonymous",
		"Basic xyz":   "anonymous",
		"Bearer bad":  "anonymous",
		"Bearer good": "u@example.com",
	} {
		rec := serve(e, header)

		require.Equal(t, http.StatusOK, rec.Code, header)
		assert.Equal(t, want, rec.Body.String(), header)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().Verify("user-token").Return(&service.TokenClaims{Email: "u@example.com", Role: entity.RoleUser}, nil)
	tokens.EXPECT().Verify("vendor-token").Return(&service.TokenClaims{Email: "v@example.com", Role: entity.RoleVendor}, nil)
	mw := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET("/", identityEcho, mw.Authenticate, mw.RequireRole(entity.RoleVendor))

	rec := serve(e, "Bearer user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")

	rec = serve(e, "Bearer vendor-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v@example.com", rec.Body.String())
}

func TestAuthMiddleware_RequireRole_WithoutAuthenticate(t *testing.T) {
	mw := NewAuthMiddleware(mockService.NewMockTokenService(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET("/", identityEcho, mw.RequireRole(entity.RoleUser))

	rec := serve(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
