package usecase

import (
	"context"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// SubscriptionUsecase defines the interface for subscription management use cases
type SubscriptionUsecase interface {
	// Subscribe creates a subscription to a category and optionally registers
	// the subscribing device for push notifications
	Subscribe(ctx context.Context, userID uuid.UUID, categoryID int64, deviceInfo *DeviceInfo) (*entity.CategorySubscription, error)

	// Unsubscribe removes a subscription to a category
	Unsubscribe(ctx context.Context, userID uuid.UUID, categoryID int64) error

	// GenerateSubscriptionQR generates a QR code for category subscription
	GenerateSubscriptionQR(ctx context.Context, categoryID int64) ([]byte, error)

	// ProcessQRSubscription processes a QR code subscription and optionally registers a device
	ProcessQRSubscription(ctx context.Context, userID uuid.UUID, qrData string, deviceInfo *DeviceInfo) (*entity.CategorySubscription, error)
}
