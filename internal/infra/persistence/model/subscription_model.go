package model

import (
	"time"

	"github.com/google/uuid"
)

// CategorySubscriptionModel is the GORM-specific struct for the 'category_subscriptions' table.
// The composite primary key makes a duplicate subscription a constraint violation.
type CategorySubscriptionModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID int64     `gorm:"primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategorySubscriptionModel) TableName() string {
	return "category_subscriptions"
}
