package handler

import (
	"net/http"

	"cafe/internal/delivery/api/middleware"
	"cafe/internal/delivery/api/response"
	"cafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler serves menu items.
type ItemHandler struct {
	itemUC usecase.ItemUsecase
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(itemUC usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{itemUC: itemUC}
}

// AddItem handles multipart item creation: name, price, cafeId and one image.
// Field values are passed through raw; the usecase checks cafe ownership first.
func (h *ItemHandler) AddItem(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	image, err := formImage(c, "image")
	if err != nil {
		return errors.WithStack(err)
	}

	item, err := h.itemUC.AddItem(c.Request().Context(), identity, &usecase.AddItemInput{
		CafeID: c.FormValue("cafeId"),
		Name:   c.FormValue("name"),
		Price:  c.FormValue("price"),
		Image:  image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// ListItems is public; a vendor token narrows the listing to that vendor's items.
func (h *ItemHandler) ListItems(c echo.Context) error {
	identity, _ := middleware.GetIdentity(c)

	items, err := h.itemUC.ListItems(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items)
}
