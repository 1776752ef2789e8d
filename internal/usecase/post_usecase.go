// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to publish a new post.
type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID int64
}

// UpdatePostInput defines the mutable fields of a post. Nil fields are left
// untouched.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	CategoryID *int64
}

// PostUsecase defines the interface for post lifecycle operations.
//
// Every mutation takes the acting user's ID from verified token claims and
// enforces ownership before touching the row.
type PostUsecase interface {
	// CreatePost publishes a new post into a category and triggers the
	// subscriber notification fan-out.
	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*entity.Post, error)

	// GetPost retrieves an active post. Soft-deleted posts are invisible here.
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// ListPosts retrieves active posts, newest first, optionally filtered by category.
	ListPosts(ctx context.Context, categoryID *int64) ([]*entity.Post, error)

	// ListPostsByAuthor retrieves a user's active posts, newest first.
	ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// UpdatePost modifies an active post owned by userID.
	UpdatePost(ctx context.Context, userID, postID uuid.UUID, input *UpdatePostInput) (*entity.Post, error)

	// SoftDeletePost hides an active post owned by userID. The post stays restorable.
	SoftDeletePost(ctx context.Context, userID, postID uuid.UUID) error

	// RestorePost brings a soft-deleted post owned by userID back to active.
	RestorePost(ctx context.Context, userID, postID uuid.UUID) error

	// HardDeletePost permanently removes a post owned by userID, in any state.
	HardDeletePost(ctx context.Context, userID, postID uuid.UUID) error
}
