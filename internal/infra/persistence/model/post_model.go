package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel is the GORM-specific struct for the 'posts' table.
//
// Soft deletion is modeled explicitly with is_deleted/deleted_at instead of
// gorm.DeletedAt: the restore path must be able to address deleted rows, and
// every read path filters on is_deleted in its own WHERE clause.
type PostModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text;not null"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID int64     `gorm:"not null;index"`
	IsDeleted  bool      `gorm:"not null;default:false;index"`
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
