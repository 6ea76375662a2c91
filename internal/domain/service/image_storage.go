package service

import (
	"context"

	"cafe/internal/domain/entity"
)

// ImageStorage uploads client images to the media host and returns a public reference.
type ImageStorage interface {
	// Upload stores the image under the given folder and returns its public reference.
	Upload(ctx context.Context, folder string, image *entity.ImageUpload) (string, error)

	// Delete removes a previously uploaded image by reference. Unknown references are ignored.
	Delete(ctx context.Context, ref string) error
}
