// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a unique constraint on email, username or subject is violated.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserReferenced is returned when deleting a user that still owns dependent rows.
	ErrUserReferenced = errors.New("user still referenced")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindBySubject retrieves a single user by their identity provider subject.
	FindBySubject(ctx context.Context, subject string) (*entity.User, error)

	// FindAll retrieves every user, newest first.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user row. Dependent rows cascade or the delete fails
	// with ErrUserReferenced.
	Delete(ctx context.Context, id uuid.UUID) error

	// SaveRefreshToken stores the currently valid refresh token for a user.
	// Passing nil clears it, ending the active session.
	SaveRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error
}
