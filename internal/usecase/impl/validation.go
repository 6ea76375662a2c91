// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cafe/config"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/service"
	"cafe/internal/util"

	"github.com/pkg/errors"
)

var inputValidator = util.NewValidator()

// validateInput runs the struct's validate tags and reports every failing field at once.
func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	details, ok := util.DescribeValidationErrors(err)
	if !ok {
		return errors.Wrap(err, "failed to validate input")
	}

	return domainerrors.ErrValidation.WithDetails(details)
}

var defaultImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// ImagePolicy bounds the uploads accepted for profiles, cafes and items.
type ImagePolicy struct {
	MaxSize      int64
	AllowedTypes []string
}

// NewImagePolicy builds the policy from storage.maxImageSize.
func NewImagePolicy(cfg *config.Config) (ImagePolicy, error) {
	if cfg.Storage == nil {
		return ImagePolicy{}, errors.New("storage config is required")
	}

	maxSize, err := util.ParseBytes(cfg.Storage.MaxImageSize)
	if err != nil {
		return ImagePolicy{}, errors.Wrap(err, "invalid storage.maxImageSize")
	}
	if maxSize <= 0 {
		return ImagePolicy{}, errors.Errorf("storage.maxImageSize must be positive, got %q", cfg.Storage.MaxImageSize)
	}

	return ImagePolicy{MaxSize: maxSize, AllowedTypes: defaultImageTypes}, nil
}

// Check validates one uploaded image, naming the form field in the error details.
func (p ImagePolicy) Check(field string, image *entity.ImageUpload) error {
	if image == nil || image.Size() == 0 {
		return domainerrors.ErrValidation.WithDetails(field + " is required")
	}
	if image.Size() > p.MaxSize {
		return domainerrors.ErrValidation.WithDetails(
			fmt.Sprintf("%s exceeds the %s limit", field, util.FormatBytes(p.MaxSize)))
	}
	if !slices.Contains(p.AllowedTypes, strings.ToLower(image.ContentType)) {
		return domainerrors.ErrValidation.WithDetails(
			fmt.Sprintf("%s must be one of %s", field, strings.Join(p.AllowedTypes, ", ")))
	}

	return nil
}

// discardUploads deletes stored images best effort, e.g. uploads for a write that did not persist.
func discardUploads(ctx context.Context, storage service.ImageStorage, logger *slog.Logger, refs []string) {
	for _, ref := range refs {
		if err := storage.Delete(ctx, ref); err != nil {
			logger.Warn("Failed to delete image", slog.String("ref", ref), slog.Any("error", err))
		}
	}
}
