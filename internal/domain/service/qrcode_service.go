package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders printable codes for a cafe's menu.
type QRCodeService interface {
	// GenerateMenuQR renders a PNG QR code pointing customers at a cafe's menu.
	GenerateMenuQR(cafeID uuid.UUID) ([]byte, error)
}
