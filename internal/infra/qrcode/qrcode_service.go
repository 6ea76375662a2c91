package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"cafe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// menuQRType tags the payload so scanners can tell menu codes apart.
const menuQRType = "menu"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// MenuQRData is the JSON payload encoded in a cafe menu QR code.
type MenuQRData struct {
	CafeID  string `json:"cafe_id"`
	Type    string `json:"type"`
	MenuURL string `json:"menu_url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL, when set, is used to embed a browsable menu link.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateMenuQR renders the cafe's menu payload as a PNG.
func (s *qrcodeService) GenerateMenuQR(cafeID uuid.UUID) ([]byte, error) {
	data := MenuQRData{
		CafeID: cafeID.String(),
		Type:   menuQRType,
	}
	if s.baseURL != "" {
		data.MenuURL = s.baseURL + "/api/cafe/item?" + url.Values{"cafeId": {cafeID.String()}}.Encode()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
