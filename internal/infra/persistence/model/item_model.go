package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Price       float64   `gorm:"type:double precision;not null"`
	Image       string    `gorm:"type:text;not null"`
	CafeID      uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorEmail string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
