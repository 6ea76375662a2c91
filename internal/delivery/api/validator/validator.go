// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/util"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request bodies.
type CustomValidator struct {
	validator *playground.Validate
}

func New() *CustomValidator {
	return &CustomValidator{validator: util.NewValidator()}
}

// Validate returns a validation AppError listing every failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	if details, ok := util.DescribeValidationErrors(err); ok {
		return domainerrors.ErrValidation.WithDetails(details)
	}

	return errors.WithStack(err)
}
