// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agora/internal/domain/entity"
	"agora/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is already taken.
	ErrDuplicateCategory = errors.New("category already exists")
	// ErrCategoryReferenced is returned when deleting a category that posts or subscriptions still reference.
	ErrCategoryReferenced = errors.New("category still referenced")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID, soft-deleted ones included.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindAll retrieves all non-deleted categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Delete removes a category row. Fails with ErrCategoryReferenced while
	// posts or subscriptions still point at it.
	Delete(ctx context.Context, id int64) error

	// CountSubscribersPerCategory returns subscriber totals grouped by category.
	CountSubscribersPerCategory(ctx context.Context) ([]*entity.CategorySubscriberCount, error)

	// CountPostsPerCategory returns active post totals grouped by category.
	CountPostsPerCategory(ctx context.Context) ([]*entity.CategoryPostCount, error)

	// SummaryForUser returns one row per category with the user's subscription
	// state and their own active post count.
	SummaryForUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserCategorySummary, error)
}
