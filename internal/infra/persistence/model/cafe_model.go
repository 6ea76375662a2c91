package model

import (
	"time"

	"github.com/google/uuid"
)

// CafeModel mirrors the 'cafes' table. A vendor cannot reuse a cafe name.
type CafeModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"column:cafename;type:varchar(100);not null;uniqueIndex:idx_cafes_name_vendor"`
	VendorEmail    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cafes_name_vendor;index"`
	VendorPhone    string    `gorm:"type:varchar(32);not null"`
	Address        string    `gorm:"column:cafe_address;type:text;not null"`
	ThumbnailImage string    `gorm:"type:text;not null"`
	Images         []string  `gorm:"column:cafe_images;type:jsonb;serializer:json;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CafeModel) TableName() string {
	return "cafes"
}
