// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agora/internal/domain/entity"
	"agora/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when trying to create a subscription that already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// Create persists a new subscription. ErrDuplicateSubscription if the pair
	// (user, category) already exists.
	Create(ctx context.Context, subscription *entity.CategorySubscription) error

	// Delete removes a subscription. ErrSubscriptionNotFound if it never existed.
	Delete(ctx context.Context, userID uuid.UUID, categoryID int64) error

	// FindByUser retrieves all subscriptions for a specific user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySubscription, error)

	// Exists reports whether a user subscribes to a category.
	Exists(ctx context.Context, userID uuid.UUID, categoryID int64) (bool, error)

	// FindSubscriberIDs retrieves the IDs of every user subscribed to a category.
	// Used to build the recipient list for post notification fan-out.
	FindSubscriberIDs(ctx context.Context, categoryID int64) ([]uuid.UUID, error)
}
