// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agora/internal/domain/entity"
	"agora/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for post persistence.
var (
	// ErrPostNotFound is returned when a post is absent or filtered out by its delete state.
	ErrPostNotFound = errors.New("post not found")
)

// PostRepository defines the interface for post-related database operations.
//
// Read operations exclude soft-deleted posts unless stated otherwise. Mutations
// carry the author in their WHERE clause so a stale ownership check can never
// modify somebody else's row.
type PostRepository interface {
	// Create persists a new post in the active state.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves an active post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindAll retrieves active posts, newest first, optionally filtered by category.
	FindAll(ctx context.Context, categoryID *int64) ([]*entity.Post, error)

	// FindByAuthor retrieves a user's active posts, newest first.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// FindOwnership retrieves the ownership projection of an active post.
	FindOwnership(ctx context.Context, id uuid.UUID) (*entity.PostOwnership, error)

	// FindOwnershipAny retrieves the ownership projection regardless of delete
	// state. Used by the restore path, which must see soft-deleted posts.
	FindOwnershipAny(ctx context.Context, id uuid.UUID) (*entity.PostOwnership, error)

	// Update modifies the title, content and category of an active post owned
	// by authorID. ErrPostNotFound if no such row matched.
	Update(ctx context.Context, post *entity.Post, authorID uuid.UUID) error

	// SoftDelete marks an active post owned by authorID as deleted and stamps
	// deleted_at. ErrPostNotFound if no such row matched.
	SoftDelete(ctx context.Context, id, authorID uuid.UUID) error

	// Restore clears the delete mark of a soft-deleted post owned by authorID.
	// ErrPostNotFound if no such row matched.
	Restore(ctx context.Context, id, authorID uuid.UUID) error

	// HardDelete removes the row of a post owned by authorID in any state.
	// ErrPostNotFound if no such row matched.
	HardDelete(ctx context.Context, id, authorID uuid.UUID) error
}
