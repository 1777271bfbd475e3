// Package http provides the HTTP transport used by the API client. It owns
// authentication headers, query and multipart encoding, optional retries, and
// the translation of non-2xx responses into classified API errors.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/DuneRaccoon/iconic-go/internal/auth"
	"github.com/DuneRaccoon/iconic-go/internal/constants"
	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// FilePart is one file to include in a multipart upload.
type FilePart struct {
	FieldName string
	FileName  string
	Content   []byte
}

// Request represents one API request at the transport level. Query keys are
// already in wire form; repeated keys (list parameters) are preserved in
// order.
type Request struct {
	Method     string
	Path       string
	Query      url.Values
	Body       interface{}
	Headers    map[string]string
	FormFields map[string]string
	FileParts  []FilePart
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport for the seller API.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       iconic.Logger
	debug        bool
	interceptors *iconic.InterceptorChain
	metrics      *iconic.Metrics
}

// Option configures the client.
type Option func(*Client)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets a structured logger for the transport.
func WithLogger(logger iconic.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables transport-level retries for transient failures.
// Retries are off by default: the API's classified errors (rate limits,
// maintenance) are surfaced to the caller rather than retried blindly.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors sets the interceptor chain run around each exchange.
func WithInterceptors(chain *iconic.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithMetrics enables prometheus instrumentation of each exchange.
func WithMetrics(m *iconic.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a transport for the given API base URL.
func NewClient(baseURL string, tokenManager auth.TokenManager, options ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	// The default retry policy treats 429/503/5xx as retryable and swallows
	// the final response once attempts run out. Those statuses must reach
	// the classifier instead, so hand the last response back untouched.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    "iconic-go",
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Do executes a request. Non-2xx responses return both the response and a
// classified *iconic.APIError; transport failures return a
// *iconic.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	body, contentType, err := c.encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	intercepted := &iconic.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    body,
	}

	if c.interceptors != nil {
		err = c.interceptors.ApplyRequest(ctx, intercepted)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	started := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	duration := time.Since(started)

	if err != nil {
		c.observe(ctx, intercepted, &iconic.Response{Duration: duration, Error: err})

		return nil, &iconic.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.observe(ctx, intercepted, &iconic.Response{
			StatusCode: httpResp.StatusCode,
			Duration:   duration,
			Error:      err,
		})

		return nil, &iconic.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
			"duration_ms": duration.Milliseconds(),
		})
	}

	var apiErr error
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr = iconic.Classify(req.Method, fullURL, resp.StatusCode, httpResp.Header, respBody)
	}

	c.observe(ctx, intercepted, &iconic.Response{
		StatusCode: resp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		Duration:   duration,
		Error:      apiErr,
	})

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

func (c *Client) observe(ctx context.Context, req *iconic.Request, resp *iconic.Response) {
	if c.metrics != nil {
		c.metrics.Observe(req.Method, req.Path, resp.StatusCode, resp.Duration)
	}

	if c.interceptors != nil {
		_ = c.interceptors.ApplyResponse(ctx, req, resp)
	}
}

// encodeBody renders the request body. A multipart body takes precedence;
// otherwise any non-nil Body is JSON-encoded.
func (c *Client) encodeBody(req *Request) ([]byte, string, error) {
	if len(req.FileParts) > 0 || len(req.FormFields) > 0 {
		return encodeMultipart(req)
	}

	if req.Body == nil {
		return nil, "", nil
	}

	encoded, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request body: %w", err)
	}

	return encoded, "application/json", nil
}

func encodeMultipart(req *Request) ([]byte, string, error) {
	var buffer bytes.Buffer

	writer := multipart.NewWriter(&buffer)

	for field, value := range req.FormFields {
		err := writer.WriteField(field, value)
		if err != nil {
			return nil, "", fmt.Errorf("writing form field %q: %w", field, err)
		}
	}

	for _, part := range req.FileParts {
		fileWriter, err := writer.CreateFormFile(part.FieldName, part.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part %q: %w", part.FieldName, err)
		}

		_, err = fileWriter.Write(part.Content)
		if err != nil {
			return nil, "", fmt.Errorf("writing file part %q: %w", part.FieldName, err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return buffer.Bytes(), writer.FormDataContentType(), nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Query: query, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}
