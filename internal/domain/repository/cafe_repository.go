package repository

import (
	"context"
	"errors"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCafeNotFound is returned when a cafe lookup finds nothing.
var ErrCafeNotFound = errors.New("cafe not found")

// ErrCafeNameTaken is returned by Create when (cafename, vendor email) already exists.
var ErrCafeNameTaken = errors.New("cafe name already taken for vendor")

// CafeRepository persists cafes.
type CafeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error)
	FindByNameAndVendor(ctx context.Context, name, vendorEmail string) (*entity.Cafe, error)
	ListByVendor(ctx context.Context, vendorEmail string) ([]*entity.Cafe, error)
	Create(ctx context.Context, cafe *entity.Cafe) error
}
