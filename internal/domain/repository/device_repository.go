// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Upsert registers a device for a user. An existing (user, deviceID) pair
	// gets its FCM token refreshed and is reactivated instead of duplicated.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindActiveByUser retrieves all active devices for a specific user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveForUsers retrieves all active devices for a list of user IDs.
	// Used for batch fetching devices during notification fan-out.
	FindActiveForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateByTokens marks devices with the given FCM tokens inactive.
	// Called when the push provider reports tokens as invalid.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// Delete removes a device owned by userID. ErrDeviceNotFound if no such row matched.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
