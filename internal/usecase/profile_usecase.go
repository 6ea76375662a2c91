package usecase

import (
	"context"

	"cafe/internal/domain/entity"
)

// ProfileUsecase reads and updates the caller's own account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error)

	// UpdateProfileImage uploads a new profile image and returns its reference.
	UpdateProfileImage(ctx context.Context, identity *entity.Identity, image *entity.ImageUpload) (string, error)
}
