package iconic

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Request is the transport-level view of an outgoing API call handed to
// request interceptors. Headers may be mutated in place; the query string and
// body are already encoded at this point.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Response is the completed exchange handed to response interceptors. Error
// carries the classified API error (or transport failure) when the exchange
// did not succeed.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
	Error      error
}

// RequestInterceptor runs before a request is sent. Returning an error aborts
// the exchange.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after a response is received, including error
// responses.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds the interceptors the transport runs around each
// exchange, in registration order.
type InterceptorChain struct {
	onRequest  []RequestInterceptor
	onResponse []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// OnRequest appends a request interceptor.
func (c *InterceptorChain) OnRequest(interceptor RequestInterceptor) {
	c.onRequest = append(c.onRequest, interceptor)
}

// OnResponse appends a response interceptor.
func (c *InterceptorChain) OnResponse(interceptor ResponseInterceptor) {
	c.onResponse = append(c.onResponse, interceptor)
}

// ApplyRequest runs the request interceptors in order, stopping at the first
// failure.
func (c *InterceptorChain) ApplyRequest(ctx context.Context, req *Request) error {
	for _, interceptor := range c.onRequest {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor: %w", err)
		}
	}

	return nil
}

// ApplyResponse runs the response interceptors in order, stopping at the
// first failure.
func (c *InterceptorChain) ApplyResponse(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.onResponse {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs each outgoing call at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("sending request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs each completed exchange with its outcome
// and elapsed time. Failed exchanges log at error level.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"duration_ms": resp.Duration.Milliseconds(),
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("request failed", fields)
		} else {
			logger.Debug("request completed", fields)
		}

		return nil
	}
}

// RateLimitInterceptor paces outgoing requests to at most requestsPerSecond,
// spreading them evenly rather than allowing bursts. Waiting respects context
// cancellation.
func RateLimitInterceptor(requestsPerSecond int) RequestInterceptor {
	interval := time.Second / time.Duration(requestsPerSecond)

	var (
		mu   sync.Mutex
		next time.Time
	)

	return func(ctx context.Context, req *Request) error {
		mu.Lock()

		now := time.Now()
		if next.Before(now) {
			next = now
		}

		wait := next.Sub(now)
		next = next.Add(interval)

		mu.Unlock()

		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("rate limit wait canceled: %w", ctx.Err())
		}
	}
}

// MetricsInterceptor records each exchange into m.
func MetricsInterceptor(m *Metrics) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		m.Observe(req.Method, req.Path, resp.StatusCode, resp.Duration)

		return nil
	}
}
