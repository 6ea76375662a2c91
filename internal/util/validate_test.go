package util

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=8"`
	Mobile   string `json:"mobile,omitempty" validate:"omitempty,min=6"`
	Internal string `json:"-" validate:"omitempty,uuid"`
}

func TestDescribeValidationErrors(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	tests := []struct {
		name     string
		form     signupForm
		expected string
	}{
		{
			name:     "required uses json name",
			form:     signupForm{Email: "a@example.com", Password: "secret"},
			expected: "fullname is required",
		},
		{
			name:     "email and max",
			form:     signupForm{FullName: "Ada", Email: "nope", Password: "far-too-long"},
			expected: "email must be a valid email address; password must be at most 8 characters",
		},
		{
			name:     "min with omitempty json option",
			form:     signupForm{FullName: "Ada", Email: "a@example.com", Password: "secret", Mobile: "123"},
			expected: "mobile must be at least 6 characters",
		},
		{
			name:     "unknown tag falls back to invalid",
			form:     signupForm{FullName: "Ada", Email: "a@example.com", Password: "secret", Internal: "x"},
			expected: "Internal is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(tt.form)
			require.Error(t, err)

			details, ok := DescribeValidationErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.expected, details)
		})
	}
}

func TestDescribeValidationErrors_NotValidation(t *testing.T) {
	t.Parallel()

	details, ok := DescribeValidationErrors(errors.New("boom"))
	assert.False(t, ok)
	assert.Empty(t, details)

	require.NoError(t, NewValidator().Struct(signupForm{FullName: "Ada", Email: "a@example.com", Password: "secret"}))
}
