package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuneRaccoon/iconic-go/internal/auth"
)

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("fixed-token")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed-token", token)

	err = manager.RefreshToken(context.Background())
	assert.ErrorIs(t, err, auth.ErrStaticTokenCannotRefresh)

	manager.SetToken("replaced", time.Time{})

	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "replaced", token)
}

func TestClientCredentialsFetchAndCache(t *testing.T) {
	t.Parallel()

	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "my-id", r.FormValue("client_id"))
		assert.Equal(t, "my-secret", r.FormValue("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"bearer","expires_in":3600}`))
	}))
	t.Cleanup(server.Close)

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TokenURL:     server.URL,
		ClientID:     "my-id",
		ClientSecret: "my-secret",
	})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)

	// A second call inside the expiry window reuses the cached token.
	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, int64(1), atomic.LoadInt64(&requests))

	// RefreshToken forces a new exchange.
	err = manager.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&requests))
}

func TestClientCredentialsExpiredTokenRefetches(t *testing.T) {
	t.Parallel()

	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"bearer","expires_in":3600}`))
	}))
	t.Cleanup(server.Close)

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TokenURL:     server.URL,
		ClientID:     "id",
		ClientSecret: "secret",
	})

	// Seed a token that is already inside the expiry skew.
	manager.SetToken("stale", time.Now().Add(10*time.Second))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, int64(1), atomic.LoadInt64(&requests))
}

func TestClientCredentialsServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TokenURL:     server.URL,
		ClientID:     "id",
		ClientSecret: "wrong",
	})

	_, err := manager.GetToken(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrTokenRequestFailed)
}

func TestClientCredentialsMissingTokenURL(t *testing.T) {
	t.Parallel()

	manager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{})

	_, err := manager.GetToken(context.Background())
	assert.ErrorIs(t, err, auth.ErrTokenURLRequired)
}
