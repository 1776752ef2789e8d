package service

import (
	"context"
)

// ProviderToken is the token response from the identity provider's code exchange.
type ProviderToken struct {
	AccessToken  string // Provider access token, used to call the userinfo endpoint.
	RefreshToken string // Provider refresh token. Not stored; local sessions use our own tokens.
	TokenType    string
	ExpiresIn    int64
}

// ProviderIdentity represents the user profile returned by the identity provider.
type ProviderIdentity struct {
	Subject     string  // Stable provider user ID ('sub' claim). Required.
	Email       string  // User's email address.
	Name        string  // User's display name.
	StudentID   *string // Optional student number.
	PhoneNumber *string // Optional phone number.
}

// OAuthClient defines the interface for the authorization code + PKCE flow
// against the external identity provider.
type OAuthClient interface {
	// ExchangeCode trades an authorization code and its PKCE verifier for
	// provider tokens.
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*ProviderToken, error)

	// FetchUserInfo retrieves the user profile behind a provider access token.
	FetchUserInfo(ctx context.Context, accessToken string) (*ProviderIdentity, error)
}
