package iconic

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
)

// CatalogClients provides access to catalog resource clients.
type CatalogClients interface {
	Brands() BrandsClient
	Categories() CategoriesClient
	Products() ProductsClient
	ProductSets() ProductSetsClient
}

// OrderClients provides access to order and fulfillment resource clients.
type OrderClients interface {
	Orders() OrdersClient
	Invoices() InvoicesClient
}

// AccountClients provides access to seller account resource clients.
type AccountClients interface {
	Webhooks() WebhooksClient
	Finance() FinanceClient
}

// Client is the full client surface for the marketplace seller API.
type Client interface {
	CatalogClients
	OrderClients
	AccountClients

	// ProductSetResource returns a navigable collection-level resource for
	// product sets, the entry point for object-style traversal.
	ProductSetResource() *ProductSetResource
}

// Requester executes one API call and returns the raw response body. It is
// the single capability the parameter codec, paginator, and resource layer
// are written against; the concrete client implements it for the blocking
// path and StreamPages provides the non-blocking surface on top.
type Requester interface {
	Execute(ctx context.Context, method, path string, params *Params, body interface{}) (json.RawMessage, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Authentication uses the OAuth2 client-credentials grant against the
// marketplace token endpoint. If AccessToken is set it is used directly as a
// static Bearer token instead, which is mainly useful for tests. A 401
// received mid-session still classifies as an authentication error; the
// client does not re-authenticate automatically.
type Config struct {
	// APIEndpoint is the base URL for the seller API
	// (e.g. "https://sellercenter-api.example.com").
	APIEndpoint string

	// ClientID and ClientSecret are the OAuth2 client credentials.
	ClientID     string
	ClientSecret string

	// TokenURL is the full OAuth2 token endpoint. Defaults to
	// APIEndpoint + "/oauth/client-credentials".
	TokenURL string

	// AccessToken, when set, bypasses the OAuth2 flow entirely.
	AccessToken string

	// RetryMax enables transport-level retries for transient failures when
	// greater than zero. The library itself never retries classified API
	// errors; this only covers the transport boundary.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Metrics enables prometheus instrumentation of API calls when non-nil.
	Metrics *Metrics
}
