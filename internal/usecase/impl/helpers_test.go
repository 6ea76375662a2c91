package impl

import (
	"io"
	"log/slog"

	"cafe/internal/domain/entity"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestImagePolicy() ImagePolicy {
	return ImagePolicy{MaxSize: 1024, AllowedTypes: defaultImageTypes}
}

func newPNGUpload(name string) *entity.ImageUpload {
	return &entity.ImageUpload{Filename: name, ContentType: "image/png", Data: append([]byte{}, pngMagic...)}
}

func vendorIdentity(email string) *entity.Identity {
	return &entity.Identity{Email: email, Role: entity.RoleVendor}
}
