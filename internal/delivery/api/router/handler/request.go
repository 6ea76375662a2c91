package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"cafe/internal/delivery/api/middleware"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// formImage reads one uploaded file. A missing field, or a body that is not
// multipart at all, yields nil so that the usecase decides how to report it.
func formImage(c echo.Context, field string) (*entity.ImageUpload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, multipartError(err)
	}

	return readImage(fh)
}

// formImages reads every file uploaded under field.
func formImages(c echo.Context, field string) ([]*entity.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, multipartError(err)
	}

	headers := form.File[field]
	images := make([]*entity.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		image, err := readImage(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	return images, nil
}

// readImage loads the file and sniffs its content type instead of trusting the client's header.
func readImage(fh *multipart.FileHeader) (*entity.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload %q", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read upload %q", fh.Filename)
	}

	return &entity.ImageUpload{
		Filename:    fh.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func multipartError(err error) error {
	if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
		return domainerrors.ErrValidation.WithDetails("multipart/form-data body expected")
	}

	return errors.Wrap(err, "failed to parse multipart form")
}

// requireIdentity returns the caller attached by the auth middleware.
func requireIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}
