package iconic_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

func TestClassifyAuthentication(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		apiErr := iconic.Classify("GET", "https://api.example.com/v2/orders", status, http.Header{}, nil)

		assert.Equal(t, iconic.ErrorKindAuthentication, apiErr.Kind, "status %d", status)
		assert.False(t, apiErr.Retryable())
		assert.True(t, iconic.IsAuthentication(apiErr))
	}
}

func TestClassifyRateLimitWithRetryAfter(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Retry-After", "30")

	apiErr := iconic.Classify("GET", "https://api.example.com/v2/orders", http.StatusTooManyRequests, header, nil)

	assert.Equal(t, iconic.ErrorKindRateLimit, apiErr.Kind)
	require.NotNil(t, apiErr.RetryAfter)
	assert.Equal(t, 30, *apiErr.RetryAfter)
	assert.True(t, apiErr.Retryable())
	assert.True(t, iconic.IsRateLimit(apiErr))
	assert.Contains(t, apiErr.Error(), "retry after: 30s")
}

func TestClassifyRateLimitWithoutRetryAfter(t *testing.T) {
	t.Parallel()

	apiErr := iconic.Classify("GET", "https://api.example.com/v2/orders", http.StatusTooManyRequests, http.Header{}, nil)

	assert.Equal(t, iconic.ErrorKindRateLimit, apiErr.Kind)
	assert.Nil(t, apiErr.RetryAfter)
}

func TestClassifyRetryAfterHTTPDateIgnored(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Retry-After", "Wed, 21 Oct 2026 07:28:00 GMT")

	apiErr := iconic.Classify("GET", "https://api.example.com/v2/orders", http.StatusTooManyRequests, header, nil)

	// Only integer seconds are honored; a date yields no hint at all.
	assert.Nil(t, apiErr.RetryAfter)
}

func TestClassifyMaintenance(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Retry-After", "120")

	apiErr := iconic.Classify("POST", "https://api.example.com/v2/product-set", http.StatusServiceUnavailable, header, nil)

	assert.Equal(t, iconic.ErrorKindMaintenance, apiErr.Kind)
	require.NotNil(t, apiErr.RetryAfter)
	assert.Equal(t, 120, *apiErr.RetryAfter)
	assert.True(t, iconic.IsMaintenance(apiErr))
}

func TestClassifyGeneric(t *testing.T) {
	t.Parallel()

	body := []byte(`{"message":"not found"}`)
	apiErr := iconic.Classify("GET", "https://api.example.com/v2/orders/1", http.StatusNotFound, http.Header{}, body)

	assert.Equal(t, iconic.ErrorKindGeneric, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, apiErr.Retryable())
	assert.NotNil(t, apiErr.Body)
	assert.Contains(t, apiErr.Error(), "not found")
}

func TestClassifyRawBodyPreviewBounded(t *testing.T) {
	t.Parallel()

	// Not JSON, longer than the 500-byte preview bound.
	body := []byte("<html>" + strings.Repeat("x", 600))

	apiErr := iconic.Classify("GET", "https://api.example.com/v2/orders", http.StatusBadGateway, http.Header{}, body)

	assert.Nil(t, apiErr.Body)
	assert.Len(t, apiErr.Raw, 500)
}

func TestAPIErrorRendering(t *testing.T) {
	t.Parallel()

	apiErr := iconic.Classify("GET", "https://api.example.com/v2/orders", http.StatusBadRequest, http.Header{}, []byte(`{"error":"bad filter"}`))

	rendered := apiErr.Error()
	assert.Contains(t, rendered, "status 400")
	assert.Contains(t, rendered, "GET https://api.example.com/v2/orders")
	assert.Contains(t, rendered, "bad filter")
}

func TestAPIErrorKindMatching(t *testing.T) {
	t.Parallel()

	apiErr := iconic.Classify("GET", "https://api.example.com", http.StatusTooManyRequests, http.Header{}, nil)
	wrapped := fmt.Errorf("listing orders: %w", apiErr)

	assert.True(t, iconic.IsRateLimit(wrapped))
	assert.False(t, iconic.IsAuthentication(wrapped))
	assert.ErrorIs(t, wrapped, &iconic.APIError{Kind: iconic.ErrorKindRateLimit})
}

func TestTransportErrorStaysDistinct(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	transportErr := &iconic.TransportError{Method: "GET", URL: "https://api.example.com/v2/orders", Err: cause}
	wrapped := fmt.Errorf("listing orders: %w", transportErr)

	assert.True(t, iconic.IsTransportError(wrapped))
	assert.ErrorIs(t, wrapped, cause)

	// A transport failure is never coerced into the API taxonomy.
	assert.False(t, iconic.IsRateLimit(wrapped))
	assert.False(t, iconic.IsAuthentication(wrapped))
	assert.False(t, iconic.IsMaintenance(wrapped))
	assert.Contains(t, transportErr.Error(), "transport error")
}
