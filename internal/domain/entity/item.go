package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a menu entry listed under one cafe and owned by that cafe's vendor.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CafeID      uuid.UUID `json:"cafeId"`
	VendorEmail string    `json:"vendorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
