// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cafe/internal/domain/entity"
)

// AuthUsecase signs principals up and in. Both operations are scoped to one role namespace.
type AuthUsecase interface {
	// Signup registers a new account. Users get no token; vendors are signed in immediately.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies the credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Role     entity.Role `json:"role"`
	FullName string      `json:"fullname"`
	Email    string      `json:"email"`
	Mobile   string      `json:"mobile"`
	Password string      `json:"password"`
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Role     entity.Role `json:"role"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
}

// --- Output DTOs ---

// SignupOutput is the result of a signup. Token is empty for user accounts.
type SignupOutput struct {
	Profile *entity.Profile `json:"profile"`
	Token   string          `json:"token,omitempty"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Profile *entity.Profile `json:"profile"`
	Token   string          `json:"token"`
}
