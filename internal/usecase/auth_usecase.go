// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agora/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a local password login.
type LoginInput struct {
	Email    string
	Password string
}

// ProviderLoginInput carries the authorization code flow parameters forwarded
// by the client after the provider redirect.
type ProviderLoginInput struct {
	Code         string
	CodeVerifier string
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the access token of the session being terminated.
type LogoutInput struct {
	AccessToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with its first token pair.
type RegisterOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginOutput returns the generated tokens after a successful authentication.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a local account and opens its first session.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates with email and password.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// LoginWithProvider completes the authorization code + PKCE flow against
	// the identity provider and opens a local session for the federated user.
	LoginWithProvider(ctx context.Context, input *ProviderLoginInput) (*LoginOutput, error)

	// Refresh rotates a refresh token into a fresh token pair. A token that
	// was already rotated out is rejected even if its signature still verifies.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Logout ends the active session of the access token's holder.
	Logout(ctx context.Context, input *LogoutInput) error
}
