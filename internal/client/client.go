// Package client provides the concrete implementation of the seller API
// client interfaces.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DuneRaccoon/iconic-go/internal/auth"
	internalhttp "github.com/DuneRaccoon/iconic-go/internal/http"
	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrCredentialsRequired = errors.New("client credentials or an access token are required")
)

// ClientImpl implements the iconic.Client interface.
type ClientImpl struct {
	httpClient *internalhttp.Client
	logger     iconic.Logger

	brands      *BrandsClientImpl
	categories  *CategoriesClientImpl
	orders      *OrdersClientImpl
	products    *ProductsClientImpl
	productSets *ProductSetsClientImpl
	webhooks    *WebhooksClientImpl
	finance     *FinanceClientImpl
	invoices    *InvoicesClientImpl
}

// New creates a client from the configuration.
func New(config *iconic.Config) (*ClientImpl, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	tokenManager, err := buildTokenManager(config)
	if err != nil {
		return nil, err
	}

	options := []internalhttp.Option{
		internalhttp.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		options = append(options, internalhttp.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		options = append(options, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		options = append(options, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Metrics != nil {
		options = append(options, internalhttp.WithMetrics(config.Metrics))
	}

	httpClient := internalhttp.NewClient(config.APIEndpoint, tokenManager, options...)

	client := &ClientImpl{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.brands = &BrandsClientImpl{client: client}
	client.categories = &CategoriesClientImpl{client: client}
	client.orders = &OrdersClientImpl{client: client}
	client.products = &ProductsClientImpl{client: client}
	client.productSets = &ProductSetsClientImpl{client: client}
	client.webhooks = &WebhooksClientImpl{client: client}
	client.finance = &FinanceClientImpl{client: client}
	client.invoices = &InvoicesClientImpl{client: client}

	return client, nil
}

func buildTokenManager(config *iconic.Config) (auth.TokenManager, error) {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken), nil
	}

	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, ErrCredentialsRequired
	}

	tokenURL := config.TokenURL
	if tokenURL == "" {
		tokenURL = config.APIEndpoint + "/oauth/client-credentials"
	}

	return auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TokenURL:     tokenURL,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
	}), nil
}

// Execute implements iconic.Requester: it encodes the parameter bag, routes
// header-bound fields, performs the exchange, and returns the raw body.
func (c *ClientImpl) Execute(ctx context.Context, method, path string, params *iconic.Params, body interface{}) (json.RawMessage, error) {
	req := &internalhttp.Request{
		Method: method,
		Path:   path,
		Body:   body,
	}

	if params != nil {
		wire, err := params.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding parameters for %s %s: %w", method, path, err)
		}

		req.Query = wire.Values
		req.Headers = wire.Headers
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// executeInto runs a request and decodes the JSON response into out.
func (c *ClientImpl) executeInto(ctx context.Context, method, path string, params *iconic.Params, body, out interface{}) error {
	raw, err := c.Execute(ctx, method, path, params, body)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	err = json.Unmarshal(raw, out)
	if err != nil {
		return fmt.Errorf("parsing %s %s response: %w", method, path, err)
	}

	return nil
}

// Brands returns the brands client.
func (c *ClientImpl) Brands() iconic.BrandsClient {
	return c.brands
}

// Categories returns the categories client.
func (c *ClientImpl) Categories() iconic.CategoriesClient {
	return c.categories
}

// Orders returns the orders client.
func (c *ClientImpl) Orders() iconic.OrdersClient {
	return c.orders
}

// Products returns the products client.
func (c *ClientImpl) Products() iconic.ProductsClient {
	return c.products
}

// ProductSets returns the product sets client.
func (c *ClientImpl) ProductSets() iconic.ProductSetsClient {
	return c.productSets
}

// Webhooks returns the webhooks client.
func (c *ClientImpl) Webhooks() iconic.WebhooksClient {
	return c.webhooks
}

// Finance returns the finance client.
func (c *ClientImpl) Finance() iconic.FinanceClient {
	return c.finance
}

// Invoices returns the invoices client.
func (c *ClientImpl) Invoices() iconic.InvoicesClient {
	return c.invoices
}

// ProductSetResource returns the collection-level navigable product set
// resource.
func (c *ClientImpl) ProductSetResource() *iconic.ProductSetResource {
	return iconic.NewProductSetCollection(c)
}

var (
	_ iconic.Client    = (*ClientImpl)(nil)
	_ iconic.Requester = (*ClientImpl)(nil)
)
