// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"cafe/internal/delivery/api/response"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup and login for both role namespaces.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	FullName string `json:"fullname" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup returns the signup handler for the given role namespace.
func (h *AuthHandler) Signup(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SignupRequest
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidation.WithDetails("malformed signup body")
		}
		req.FullName = strings.TrimSpace(req.FullName)
		req.Email = strings.TrimSpace(req.Email)
		req.Mobile = strings.TrimSpace(req.Mobile)

		if err := c.Validate(&req); err != nil {
			return errors.WithStack(err)
		}

		output, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
			Role:     role,
			FullName: req.FullName,
			Email:    req.Email,
			Mobile:   req.Mobile,
			Password: req.Password,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, output)
	}
}

// Login returns the login handler for the given role namespace. The profile is
// keyed by role, e.g. {"user": {...}, "token": "..."}.
func (h *AuthHandler) Login(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidation.WithDetails("malformed login body")
		}
		req.Email = strings.TrimSpace(req.Email)

		if err := c.Validate(&req); err != nil {
			return errors.WithStack(err)
		}

		output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
			Role:     role,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, map[string]any{
			role.String(): output.Profile,
			"token":       output.Token,
		})
	}
}
