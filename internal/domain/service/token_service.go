package service

import (
	"fmt"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the identity asserted by a session token.
type TokenClaims struct {
	SubjectID uuid.UUID
	Email     string
	Role      entity.Role
}

// Identity converts verified claims into the request identity.
func (c *TokenClaims) Identity() *entity.Identity {
	return &entity.Identity{
		SubjectID: c.SubjectID,
		Email:     c.Email,
		Role:      c.Role,
	}
}

// TokenRejection explains why a presented token was not accepted.
type TokenRejection string

const (
	TokenMalformed        TokenRejection = "malformed"
	TokenInvalidSignature TokenRejection = "invalid_signature"
	TokenExpired          TokenRejection = "expired"
)

// TokenError is returned by Verify for every rejected token.
type TokenError struct {
	Reason TokenRejection
	Err    error
}

func (e *TokenError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("token rejected: %s", e.Reason)
	}

	return fmt.Sprintf("token rejected: %s: %v", e.Reason, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// Issue signs the claims into a token valid for the configured window.
	Issue(claims TokenClaims) (string, error)

	// Verify checks signature and expiry. Rejections are always *TokenError.
	Verify(token string) (*TokenClaims, error)
}
