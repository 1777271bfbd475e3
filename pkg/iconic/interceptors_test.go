package iconic_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

func TestInterceptorChainOrder(t *testing.T) {
	t.Parallel()

	chain := iconic.NewInterceptorChain()

	var order []string

	chain.OnRequest(func(ctx context.Context, req *iconic.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.OnRequest(func(ctx context.Context, req *iconic.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ApplyRequest(context.Background(), &iconic.Request{Method: "GET", Path: "/v2/brands"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChainStopsOnError(t *testing.T) {
	t.Parallel()

	chain := iconic.NewInterceptorChain()
	boom := errors.New("boom")

	var reached bool

	chain.OnRequest(func(ctx context.Context, req *iconic.Request) error {
		return boom
	})
	chain.OnRequest(func(ctx context.Context, req *iconic.Request) error {
		reached = true

		return nil
	})

	err := chain.ApplyRequest(context.Background(), &iconic.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

func TestInterceptorChainResponse(t *testing.T) {
	t.Parallel()

	chain := iconic.NewInterceptorChain()

	var sawStatus int

	chain.OnResponse(func(ctx context.Context, req *iconic.Request, resp *iconic.Response) error {
		sawStatus = resp.StatusCode

		return nil
	})

	err := chain.ApplyResponse(context.Background(), &iconic.Request{}, &iconic.Response{StatusCode: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, sawStatus)
}

func TestRateLimitInterceptorPacesRequests(t *testing.T) {
	t.Parallel()

	limiter := iconic.RateLimitInterceptor(50)
	req := &iconic.Request{Method: "GET", Path: "/v2/orders"}

	started := time.Now()

	for i := 0; i < 4; i++ {
		require.NoError(t, limiter(context.Background(), req))
	}

	// 50 rps means 20ms between requests: four calls span three intervals.
	assert.GreaterOrEqual(t, time.Since(started), 60*time.Millisecond)
}

func TestRateLimitInterceptorHonorsCancellation(t *testing.T) {
	t.Parallel()

	limiter := iconic.RateLimitInterceptor(1)
	req := &iconic.Request{Method: "GET", Path: "/v2/orders"}

	// First call passes immediately; the second would wait a full second.
	require.NoError(t, limiter(context.Background(), req))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
