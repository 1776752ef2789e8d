// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategorySubscription represents a user's subscription to a category.
// A user subscribes to a category at most once.
type CategorySubscription struct {
	UserID       uuid.UUID `json:"user_id"`       // The ID of the subscribing user.
	CategoryID   int64     `json:"category_id"`   // The ID of the category being subscribed to.
	SubscribedAt time.Time `json:"subscribed_at"` // Timestamp of when the subscription was created.
}
