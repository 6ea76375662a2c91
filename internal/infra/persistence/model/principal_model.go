// Package model holds the GORM persistence models. They mirror tables and never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalColumns are shared by the users and vendors tables.
type PrincipalColumns struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Mobile       string    `gorm:"type:varchar(32);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	ProfileImage *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrincipalRecord is implemented by every table that stores principals.
type PrincipalRecord interface {
	Columns() *PrincipalColumns
	TableName() string
}

// UserModel mirrors the 'users' table.
type UserModel struct {
	PrincipalColumns
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// Columns exposes the shared principal columns.
func (m *UserModel) Columns() *PrincipalColumns {
	return &m.PrincipalColumns
}

// VendorModel mirrors the 'vendors' table.
type VendorModel struct {
	PrincipalColumns
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}

// Columns exposes the shared principal columns.
func (m *VendorModel) Columns() *PrincipalColumns {
	return &m.PrincipalColumns
}
