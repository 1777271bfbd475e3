package iconic

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DuneRaccoon/iconic-go/internal/constants"
)

// ErrorKind identifies one member of the closed classification taxonomy.
type ErrorKind string

const (
	// ErrorKindAuthentication covers 401 and 403: credentials invalid or
	// expired. Not retryable without re-authentication.
	ErrorKindAuthentication ErrorKind = "authentication"

	// ErrorKindRateLimit covers 429: the caller exceeded its quota.
	// Retryable after RetryAfter seconds, or immediately at the caller's
	// discretion if the server sent no hint.
	ErrorKindRateLimit ErrorKind = "rate_limit"

	// ErrorKindMaintenance covers 503: the service is temporarily
	// unavailable. Retryable after RetryAfter seconds.
	ErrorKindMaintenance ErrorKind = "maintenance"

	// ErrorKindGeneric covers every other non-2xx status.
	ErrorKindGeneric ErrorKind = "api_error"
)

// APIError is a classified HTTP failure from the marketplace API. It
// describes the failure with full diagnostic context; it never retries or
// mutates the originating request.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Method     string
	URL        string

	// RetryAfter is the parsed Retry-After header in seconds. Nil when the
	// header was missing or not an integer.
	RetryAfter *int

	// Body holds the response body when it parses as JSON.
	Body interface{}

	// Raw is a bounded preview of the response bytes, kept for diagnostics
	// when the body is not structured.
	Raw []byte
}

// Error renders the status, request identity, parsed or raw body, and the
// retry hint when present.
func (e *APIError) Error() string {
	parts := []string{fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)}

	if e.Method != "" && e.URL != "" {
		parts = append(parts, fmt.Sprintf("request: %s %s", e.Method, e.URL))
	}

	if e.Body != nil {
		parts = append(parts, fmt.Sprintf("response: %v", e.Body))
	} else if len(e.Raw) > 0 {
		parts = append(parts, fmt.Sprintf("response content: %s", string(e.Raw)))
	}

	if e.RetryAfter != nil {
		parts = append(parts, fmt.Sprintf("retry after: %ds", *e.RetryAfter))
	}

	return strings.Join(parts, "; ")
}

// Is matches two APIErrors by kind, so callers can use
// errors.Is(err, &APIError{Kind: ErrorKindRateLimit}).
func (e *APIError) Is(target error) bool {
	other := &APIError{}
	if !errors.As(target, &other) {
		return false
	}

	return e.Kind == other.Kind
}

// Retryable reports whether the failure is worth retrying at all:
// rate-limit and maintenance errors are, authentication and generic
// failures are not.
func (e *APIError) Retryable() bool {
	return e.Kind == ErrorKindRateLimit || e.Kind == ErrorKindMaintenance
}

// Classify maps a failed HTTP exchange to exactly one APIError. The first
// matching rule wins: 401/403 authentication, 429 rate limit, 503
// maintenance, anything else generic.
func Classify(method, requestURL string, statusCode int, header http.Header, body []byte) *APIError {
	apiErr := &APIError{
		Kind:       ErrorKindGeneric,
		StatusCode: statusCode,
		Method:     method,
		URL:        requestURL,
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		apiErr.Kind = ErrorKindAuthentication
	case statusCode == http.StatusTooManyRequests:
		apiErr.Kind = ErrorKindRateLimit
		apiErr.RetryAfter = parseRetryAfter(header)
	case statusCode == http.StatusServiceUnavailable:
		apiErr.Kind = ErrorKindMaintenance
		apiErr.RetryAfter = parseRetryAfter(header)
	}

	var parsed interface{}
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		apiErr.Body = parsed
	} else if len(body) > 0 {
		preview := body
		if len(preview) > constants.RawBodyPreviewLimit {
			preview = preview[:constants.RawBodyPreviewLimit]
		}

		apiErr.Raw = preview
	}

	return apiErr
}

// parseRetryAfter extracts an integer Retry-After value in seconds. HTTP
// dates and malformed values yield nil rather than a guess.
func parseRetryAfter(header http.Header) *int {
	value := header.Get("Retry-After")
	if value == "" {
		return nil
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}

	return &seconds
}

// IsAuthentication checks if the error is a classified authentication failure.
func IsAuthentication(err error) bool {
	return hasKind(err, ErrorKindAuthentication)
}

// IsRateLimit checks if the error is a classified rate-limit failure.
func IsRateLimit(err error) bool {
	return hasKind(err, ErrorKindRateLimit)
}

// IsMaintenance checks if the error is a classified maintenance failure.
func IsMaintenance(err error) bool {
	return hasKind(err, ErrorKindMaintenance)
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// TransportError wraps failures that happened below the HTTP status layer:
// connection refused, timeouts, malformed responses. They are a separate
// failure category and are never coerced into the APIError taxonomy.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Method != "" && e.URL != "" {
		return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
	}

	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError checks if the error originated below the HTTP status
// layer rather than from a classified API response.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
