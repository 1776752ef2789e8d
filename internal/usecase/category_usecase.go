// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string
}

// CategoryUsecase defines the interface for category management and reporting.
type CategoryUsecase interface {
	// CreateCategory creates a new category. Duplicate names conflict.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// ListCategories retrieves all non-deleted categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// DeleteCategory removes a category. Categories still referenced by posts
	// or subscriptions conflict.
	DeleteCategory(ctx context.Context, id int64) error

	// SubscriberReport returns subscriber totals per category.
	SubscriberReport(ctx context.Context) ([]*entity.CategorySubscriberCount, error)

	// PostReport returns active post totals per category.
	PostReport(ctx context.Context) ([]*entity.CategoryPostCount, error)

	// UserSummary returns per-category subscription state and own-post counts
	// for one user.
	UserSummary(ctx context.Context, userID uuid.UUID) ([]*entity.UserCategorySummary, error)
}
