package entity

import (
	"time"

	"github.com/google/uuid"
)

// Principal is an account that can sign in: either a User or a Vendor.
// Each role is its own namespace, so the same email may exist once per role.
type Principal struct {
	ID           uuid.UUID `json:"id"`
	Role         Role      `json:"role"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public view of a Principal. It never carries the credential.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	ProfileImage *string   `json:"profileImage,omitempty"`
}

// Profile returns the credential-free view of the principal.
func (p *Principal) Profile() *Profile {
	return &Profile{
		ID:           p.ID,
		FullName:     p.FullName,
		Email:        p.Email,
		Mobile:       p.Mobile,
		ProfileImage: p.ProfileImage,
	}
}

// Identity is the verified caller extracted from a session token.
type Identity struct {
	SubjectID uuid.UUID
	Email     string
	Role      Role
}

// IsVendor reports whether the identity belongs to the vendor namespace.
func (i *Identity) IsVendor() bool {
	return i != nil && i.Role == RoleVendor
}
