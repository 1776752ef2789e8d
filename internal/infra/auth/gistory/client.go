// Package gistory implements the OAuthClient against the Gistory identity
// provider using the authorization code + PKCE flow.
package gistory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agora/config"
	"agora/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.idp.gistory.me"
	defaultTimeout = 10 * time.Second

	tokenPath    = "/oauth/token"
	userInfoPath = "/oauth/userinfo"
)

// Client exchanges authorization codes and fetches user profiles from the
// identity provider. Client credentials are sent via HTTP Basic auth.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewClient creates a new identity provider client from configuration.
func NewClient(cfg *config.Config) service.OAuthClient {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	var clientID, clientSecret string

	if cfg.OAuth != nil {
		if cfg.OAuth.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.OAuth.BaseURL, "/")
		}
		if cfg.OAuth.Timeout > 0 {
			timeout = cfg.OAuth.Timeout
		}
		clientID = cfg.OAuth.ClientID
		clientSecret = cfg.OAuth.ClientSecret
	}

	return &Client{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// ExchangeCode trades an authorization code and its PKCE verifier for provider tokens.
func (c *Client) ExchangeCode(ctx context.Context, code, codeVerifier string) (*service.ProviderToken, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("code_verifier", codeVerifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int64  `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	return &service.ProviderToken{
		AccessToken:  tokenResponse.AccessToken,
		RefreshToken: tokenResponse.RefreshToken,
		TokenType:    tokenResponse.TokenType,
		ExpiresIn:    tokenResponse.ExpiresIn,
	}, nil
}

// FetchUserInfo retrieves the user profile behind a provider access token.
func (c *Client) FetchUserInfo(ctx context.Context, accessToken string) (*service.ProviderIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+userInfoPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var userInfo struct {
		Sub         string `json:"sub"`
		Email       string `json:"email"`
		Name        string `json:"name"`
		StudentID   string `json:"student_id"`
		PhoneNumber string `json:"phone_number"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	identity := &service.ProviderIdentity{
		Subject: userInfo.Sub,
		Email:   userInfo.Email,
		Name:    userInfo.Name,
	}
	if userInfo.StudentID != "" {
		identity.StudentID = &userInfo.StudentID
	}
	if userInfo.PhoneNumber != "" {
		identity.PhoneNumber = &userInfo.PhoneNumber
	}

	return identity, nil
}
