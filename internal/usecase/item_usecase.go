package usecase

import (
	"context"

	"cafe/internal/domain/entity"
)

// ItemUsecase manages menu items.
type ItemUsecase interface {
	// AddItem creates an item under a cafe owned by the caller.
	AddItem(ctx context.Context, identity *entity.Identity, input *AddItemInput) (*entity.Item, error)

	// ListItems returns the caller's items for a vendor identity and the whole catalog otherwise.
	ListItems(ctx context.Context, identity *entity.Identity) ([]*entity.Item, error)
}

// AddItemInput carries the raw form values. Price stays a string so that the
// ownership check can run before any field is parsed.
type AddItemInput struct {
	CafeID string              `json:"cafeId"`
	Name   string              `json:"name"`
	Price  string              `json:"price"`
	Image  *entity.ImageUpload `json:"image"`
}
