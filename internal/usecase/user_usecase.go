// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput defines the profile fields a user may change. Nil fields are
// left untouched.
type UpdateUserInput struct {
	Name        *string
	Email       *string
	StudentID   *string
	PhoneNumber *string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// ListUsers retrieves every user, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser modifies the authenticated user's own profile.
	UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the authenticated user's own account.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// ListSubscriptions retrieves the user's category subscriptions.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySubscription, error)
}
