// Package storage hosts uploaded images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"cafe/config"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

// blobImageStorage implements service.ImageStorage on top of a blob bucket.
type blobImageStorage struct {
	bucket        *blob.Bucket
	keyPrefix     string
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the image storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobImageStorage(bucket, cfg.KeyPrefix, cfg.PublicBaseURL, params.Logger), nil
}

// NewBlobImageStorage wraps an already opened bucket.
func NewBlobImageStorage(bucket *blob.Bucket, keyPrefix, publicBaseURL string, logger *slog.Logger) service.ImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		keyPrefix:     strings.Trim(keyPrefix, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the image under <prefix>/<folder>/<uuid><ext> and returns its public reference.
func (s *blobImageStorage) Upload(ctx context.Context, folder string, image *entity.ImageUpload) (string, error) {
	if image == nil || len(image.Data) == 0 {
		return "", errors.New("empty image")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate object key")
	}

	key := path.Join(s.keyPrefix, strings.Trim(folder, "/"), id.String()+extensionFor(image))

	err = s.bucket.WriteAll(ctx, key, image.Data, &blob.WriterOptions{
		ContentType: image.ContentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	s.logger.DebugContext(ctx, "Image uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(image.Data)),
	)

	return s.refFor(key), nil
}

// Delete removes the object behind ref. Missing objects are not an error.
func (s *blobImageStorage) Delete(ctx context.Context, ref string) error {
	key := s.keyFor(ref)
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *blobImageStorage) refFor(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}

// keyFor maps a ref back to its object key. Refs not issued under the public
// base URL map to "" and are never deleted.
func (s *blobImageStorage) keyFor(ref string) string {
	if s.publicBaseURL == "" {
		return ref
	}

	key, ok := strings.CutPrefix(ref, s.publicBaseURL+"/")
	if !ok {
		return ""
	}

	return key
}

// extensionFor prefers the uploaded file's extension and falls back to the content type.
func extensionFor(image *entity.ImageUpload) string {
	if ext := strings.ToLower(filepath.Ext(image.Filename)); ext != "" {
		return ext
	}

	if exts, err := mime.ExtensionsByType(image.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
