package iconic_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

func TestBatchExecutorRunsAllOperations(t *testing.T) {
	t.Parallel()

	executor := iconic.NewBatchExecutor(2)

	operations := []iconic.BatchOperation{
		{ID: "a", Execute: func(ctx context.Context) (interface{}, error) { return 1, nil }},
		{ID: "b", Execute: func(ctx context.Context) (interface{}, error) { return 2, nil }},
		{ID: "c", Execute: func(ctx context.Context) (interface{}, error) { return 3, nil }},
	}

	results := executor.Execute(context.Background(), operations)

	require.Len(t, results, 3)

	// Results keep operation order regardless of completion order.
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, "c", results[2].ID)

	for _, result := range results {
		assert.True(t, result.Success)
		require.NoError(t, result.Error)
	}
}

func TestBatchExecutorRecordsFailures(t *testing.T) {
	t.Parallel()

	opErr := errors.New("boom")
	executor := iconic.NewBatchExecutor(0)

	results := executor.Execute(context.Background(), []iconic.BatchOperation{
		{ID: "ok", Execute: func(ctx context.Context) (interface{}, error) { return "fine", nil }},
		{ID: "bad", Execute: func(ctx context.Context) (interface{}, error) { return nil, opErr }},
	})

	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.ErrorIs(t, results[1].Error, opErr)
}

func TestBatchExecutorBoundsConcurrency(t *testing.T) {
	t.Parallel()

	var active, peak int64

	executor := iconic.NewBatchExecutor(2)

	operations := make([]iconic.BatchOperation, 8)
	for i := range operations {
		operations[i] = iconic.BatchOperation{
			ID: "op",
			Execute: func(ctx context.Context) (interface{}, error) {
				current := atomic.AddInt64(&active, 1)
				for {
					observed := atomic.LoadInt64(&peak)
					if current <= observed || atomic.CompareAndSwapInt64(&peak, observed, current) {
						break
					}
				}

				atomic.AddInt64(&active, -1)

				return nil, nil
			},
		}
	}

	executor.Execute(context.Background(), operations)

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestBatchExecutorCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := iconic.NewBatchExecutor(1)

	results := executor.Execute(ctx, []iconic.BatchOperation{
		{ID: "never", Execute: func(ctx context.Context) (interface{}, error) { return nil, nil }},
	})

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, context.Canceled)
}
