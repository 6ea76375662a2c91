package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinCafeImages is the smallest allowed gallery size.
	MinCafeImages = 1
	// MaxCafeImages is the largest allowed gallery size.
	MaxCafeImages = 3
)

// Cafe is a storefront owned by exactly one vendor, identified by the vendor's email.
type Cafe struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"cafename"`
	VendorEmail    string    `json:"vendorEmail"`
	VendorPhone    string    `json:"vendorPhone"`
	Address        string    `json:"cafeAddress"`
	ThumbnailImage string    `json:"thumbnailImage"`
	Images         []string  `json:"cafeImages"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the cafe belongs to the vendor with the given email.
func (c *Cafe) OwnedBy(vendorEmail string) bool {
	return c != nil && c.VendorEmail == vendorEmail
}
