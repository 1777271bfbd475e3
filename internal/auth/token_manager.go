package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/DuneRaccoon/iconic-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrTokenRequestFailed       = errors.New("token request failed")
	ErrTokenURLRequired         = errors.New("token URL is required")
)

// TokenManager supplies bearer tokens for API requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager provides a fixed token; used when the caller already
// holds a valid access token, and in tests.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenManager creates a static token manager.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the stored token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, nil
}

// RefreshToken fails: a static token has nothing to refresh against.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken replaces the stored token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

// ClientCredentialsConfig configures the OAuth2 client-credentials grant.
type ClientCredentialsConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// ClientCredentialsTokenManager obtains and refreshes tokens via the OAuth2
// client-credentials grant. Tokens are cached until shortly before their
// server-side expiry.
type ClientCredentialsTokenManager struct {
	config     *ClientCredentialsConfig
	httpClient *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewClientCredentialsTokenManager creates a client-credentials token
// manager.
func NewClientCredentialsTokenManager(config *ClientCredentialsConfig) *ClientCredentialsTokenManager {
	return &ClientCredentialsTokenManager{
		config: config,
		httpClient: &http.Client{
			Timeout: constants.TokenHTTPTimeout,
		},
	}
}

// GetToken returns a valid access token, requesting a fresh one when the
// cached token is missing or about to expire.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && time.Now().Before(m.expiresAt.Add(-constants.TokenExpirySkew)) {
		return m.token, nil
	}

	err := m.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	return m.token, nil
}

// RefreshToken forces a new token request regardless of cached expiry.
func (m *ClientCredentialsTokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fetchToken(ctx)
}

// SetToken seeds the cache with an externally obtained token.
func (m *ClientCredentialsTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.expiresAt = expiresAt
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// fetchToken performs the grant. Callers must hold m.mu.
func (m *ClientCredentialsTokenManager) fetchToken(ctx context.Context) error {
	if m.config.TokenURL == "" {
		return ErrTokenURLRequired
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrTokenRequestFailed, resp.StatusCode)
	}

	var parsed tokenResponse

	err = json.Unmarshal(body, &parsed)
	if err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}

	m.token = parsed.AccessToken
	m.expiresAt = time.Now().Add(time.Duration(parsed.ExpiresIn) * time.Second)

	return nil
}
