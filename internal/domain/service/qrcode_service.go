package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateSubscriptionQR generates a QR code encoding a category subscription link
	GenerateSubscriptionQR(categoryID int64) ([]byte, error)

	// ParseSubscriptionQR parses QR code data and returns the category ID
	ParseSubscriptionQR(qrData string) (int64, error)
}
