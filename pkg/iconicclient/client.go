package iconicclient

import (
	"fmt"
	"strings"

	"github.com/DuneRaccoon/iconic-go/internal/client"
	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// New creates a seller API client from a full configuration.
func New(config *iconic.Config) (iconic.Client, error) {
	if config == nil {
		return nil, iconic.ErrConfigRequired
	}

	// Normalize the API endpoint.
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if apiEndpoint != "" && !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	impl, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return impl, nil
}

// NewWithToken creates a client with an API endpoint and a static access
// token, bypassing the OAuth2 flow.
func NewWithToken(endpoint, token string) (iconic.Client, error) {
	return New(&iconic.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NewWithClientCredentials creates a client using the OAuth2
// client-credentials grant against the marketplace token endpoint.
func NewWithClientCredentials(endpoint, clientID, clientSecret string) (iconic.Client, error) {
	return New(&iconic.Config{
		APIEndpoint:  endpoint,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}
