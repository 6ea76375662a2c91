// Package errors lets infrastructure code use one import for both stdlib
// matching (Is, As) and pkg/errors stack annotation (Wrap, WithStack).
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and the caller's stack. It returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
