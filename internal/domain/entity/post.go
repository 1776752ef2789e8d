// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a piece of content published by a user into a category.
//
// A post is in exactly one of three states: active, soft-deleted (hidden from
// reads but restorable), or gone (hard-deleted, no row remains).
type Post struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the post.
	Title      string     `json:"title"`       // Short headline shown in listings.
	Content    string     `json:"content"`     // Post body.
	AuthorID   uuid.UUID  `json:"author_id"`   // The user who created the post; only they may mutate it.
	CategoryID int64      `json:"category_id"` // The category this post belongs to.
	IsDeleted  bool       `json:"is_deleted"`  // True while the post is soft-deleted.
	DeletedAt  *time.Time `json:"deleted_at"`  // When the post was soft-deleted. Nil while active.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this post was created.
	UpdatedAt  time.Time  `json:"updated_at"`  // Timestamp of the last modification.
}

// PostOwnership is the minimal projection used by ownership checks before a
// mutation. It deliberately omits the content columns.
type PostOwnership struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	IsDeleted bool
}
