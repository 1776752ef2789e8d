package gistory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agora/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	cfg := &config.Config{
		OAuth: &config.OAuthConfig{
			BaseURL:      baseURL,
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Timeout:      2 * time.Second,
		},
	}

	return NewClient(cfg).(*Client)
}

func TestClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, tokenPath, r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "the-verifier", r.PostForm.Get("code_verifier"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "provider-access",
			"refresh_token": "provider-refresh",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
	defer server.Close()

	client := testClient(server.URL)

	token, err := client.ExchangeCode(context.Background(), "the-code", "the-verifier")
	require.NoError(t, err)
	assert.Equal(t, "provider-access", token.AccessToken)
	assert.Equal(t, "provider-refresh", token.RefreshToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)
}

func TestClient_ExchangeCode_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := testClient(server.URL)

	token, err := client.ExchangeCode(context.Background(), "bad-code", "the-verifier")
	assert.Error(t, err)
	assert.Nil(t, token)
	assert.Contains(t, err.Error(), "status 400")
}

func TestClient_FetchUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, userInfoPath, r.URL.Path)
		assert.Equal(t, "Bearer provider-access", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":          "subject-123",
			"email":        "user@example.com",
			"name":         "Some User",
			"student_id":   "B123456",
			"phone_number": "0912345678",
		})
	}))
	defer server.Close()

	client := testClient(server.URL)

	identity, err := client.FetchUserInfo(context.Background(), "provider-access")
	require.NoError(t, err)
	assert.Equal(t, "subject-123", identity.Subject)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "Some User", identity.Name)
	require.NotNil(t, identity.StudentID)
	assert.Equal(t, "B123456", *identity.StudentID)
	require.NotNil(t, identity.PhoneNumber)
	assert.Equal(t, "0912345678", *identity.PhoneNumber)
}

func TestClient_FetchUserInfo_OmitsEmptyOptionalFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":   "subject-123",
			"email": "user@example.com",
			"name":  "Some User",
		})
	}))
	defer server.Close()

	client := testClient(server.URL)

	identity, err := client.FetchUserInfo(context.Background(), "provider-access")
	require.NoError(t, err)
	assert.Nil(t, identity.StudentID)
	assert.Nil(t, identity.PhoneNumber)
}
