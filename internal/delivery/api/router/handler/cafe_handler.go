package handler

import (
	"log/slog"
	"net/http"

	"cafe/internal/delivery/api/response"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CafeHandlerParams holds dependencies for CafeHandler, injected by Fx.
type CafeHandlerParams struct {
	fx.In

	CafeUC usecase.CafeUsecase
	Logger *slog.Logger
}

// CafeHandler serves a vendor's cafes.
type CafeHandler struct {
	cafeUC usecase.CafeUsecase
	logger *slog.Logger
}

// NewCafeHandler is the constructor for CafeHandler
func NewCafeHandler(params CafeHandlerParams) *CafeHandler {
	return &CafeHandler{
		cafeUC: params.CafeUC,
		logger: params.Logger,
	}
}

// RegisterCafe handles multipart cafe registration: cafename, vendorPhone,
// cafeAddress, one thumbnailImage and one to three cafeImages.
func (h *CafeHandler) RegisterCafe(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	images, err := formImages(c, "cafeImages")
	if err != nil {
		return errors.WithStack(err)
	}
	thumbnail, err := formImage(c, "thumbnailImage")
	if err != nil {
		return errors.WithStack(err)
	}

	cafe, err := h.cafeUC.RegisterCafe(c.Request().Context(), identity, &usecase.RegisterCafeInput{
		Name:      c.FormValue("cafename"),
		Phone:     c.FormValue("vendorPhone"),
		Address:   c.FormValue("cafeAddress"),
		Thumbnail: thumbnail,
		Images:    images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cafe)
}

func (h *CafeHandler) ListCafes(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	cafes, err := h.cafeUC.ListCafes(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cafes)
}

// MenuQR renders the menu QR code of one of the caller's cafes as PNG.
func (h *CafeHandler) MenuQR(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	cafeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidation.WithDetails("id must be a valid cafe id")
	}

	png, err := h.cafeUC.MenuQR(c.Request().Context(), identity, cafeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
