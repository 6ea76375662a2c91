// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPrincipalNotFound is returned when no account matches the lookup in the requested namespace.
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrEmailTaken is returned by Create when the store's unique index on email rejects the insert.
var ErrEmailTaken = errors.New("email already taken")

// PrincipalRepository persists users and vendors. Every call names the role,
// which selects the namespace (table) being read or written.
type PrincipalRepository interface {
	// FindByEmail retrieves an account by its exact email within one namespace.
	FindByEmail(ctx context.Context, role entity.Role, email string) (*entity.Principal, error)

	// FindByID retrieves an account by ID within one namespace.
	FindByID(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.Principal, error)

	// Create persists a new account. It assigns the ID and timestamps on success.
	Create(ctx context.Context, principal *entity.Principal) error

	// UpdateProfileImage replaces the profile image reference of an account.
	UpdateProfileImage(ctx context.Context, role entity.Role, id uuid.UUID, imageRef string) error
}
