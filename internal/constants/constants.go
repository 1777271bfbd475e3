package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenHTTPTimeout is the timeout for token endpoint requests.
	TokenHTTPTimeout = 10 * time.Second
)

// Retry behavior. Retries are off unless explicitly enabled on the
// transport; these are the bounds applied when they are.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination defaults.
const (
	// DefaultPageLimit is the default number of items requested per page.
	DefaultPageLimit = 100

	// MaxPageLimit is the largest page size the API accepts.
	MaxPageLimit = 500
)

// Diagnostics.
const (
	// RawBodyPreviewLimit bounds the raw response preview kept on
	// classified errors.
	RawBodyPreviewLimit = 500
)

// Concurrency and batching limits.
const (
	// DefaultConcurrencyLimit limits concurrent batch operations.
	DefaultConcurrencyLimit = 3

	// StreamBufferSize is the channel buffer used when streaming pages.
	StreamBufferSize = 1
)

// Token refresh.
const (
	// TokenExpirySkew is subtracted from a token's lifetime so it is
	// refreshed before the server-side expiry.
	TokenExpirySkew = 60 * time.Second
)
