package handler

import (
	"net/http"

	"cafe/internal/delivery/api/response"
	"cafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the caller's own account. The role comes from the token.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfileImage accepts a multipart body with a single "image" file.
func (h *ProfileHandler) UpdateProfileImage(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	image, err := formImage(c, "image")
	if err != nil {
		return errors.WithStack(err)
	}

	ref, err := h.profileUC.UpdateProfileImage(c.Request().Context(), identity, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"profileImage": ref})
}
