// Package entity contains the core business objects of the project.
package entity

// Role identifies which principal namespace an account belongs to.
type Role string

const (
	// RoleUser indicates a customer account.
	RoleUser Role = "user"
	// RoleVendor indicates a cafe owner account.
	RoleVendor Role = "vendor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleVendor:
		return true
	default:
		return false
	}
}
