package repository

import (
	"context"

	"cafe/internal/domain/entity"
)

// ItemRepository persists menu items.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error

	// ListAll returns the public catalog.
	ListAll(ctx context.Context) ([]*entity.Item, error)

	// ListByVendor returns only the items owned by the given vendor.
	ListByVendor(ctx context.Context, vendorEmail string) ([]*entity.Item, error)
}
