package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// CafeUsecase manages the calling vendor's cafes.
type CafeUsecase interface {
	RegisterCafe(ctx context.Context, identity *entity.Identity, input *RegisterCafeInput) (*entity.Cafe, error)
	ListCafes(ctx context.Context, identity *entity.Identity) ([]*entity.Cafe, error)

	// MenuQR renders a menu QR code for a cafe the caller owns.
	MenuQR(ctx context.Context, identity *entity.Identity, cafeID uuid.UUID) ([]byte, error)
}

// RegisterCafeInput defines the data required to register a cafe.
type RegisterCafeInput struct {
	Name      string                `json:"cafename" validate:"required,max=100"`
	Phone     string                `json:"vendorPhone" validate:"required,max=32"`
	Address   string                `json:"cafeAddress" validate:"required,max=500"`
	Thumbnail *entity.ImageUpload   `json:"thumbnailImage"`
	Images    []*entity.ImageUpload `json:"cafeImages"`
}
