package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"

	"agora/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CategoryID string `json:"category_id"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateSubscriptionQR generates a QR code encoding a category subscription link
func (s *qrcodeService) GenerateSubscriptionQR(categoryID int64) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		CategoryID: strconv.FormatInt(categoryID, 10),
		Type:       "subscription",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseSubscriptionQR parses QR code data and returns the category ID
func (s *qrcodeService) ParseSubscriptionQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "subscription" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	categoryID, err := strconv.ParseInt(data.CategoryID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse category ID: %w", err)
	}

	return categoryID, nil
}
