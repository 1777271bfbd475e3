package iconic

import (
	"context"
	"sync"
	"time"

	"github.com/DuneRaccoon/iconic-go/internal/constants"
)

// BatchOperation is one unit of work in a batch, typically a bulk status
// transition or stock update built from a client method.
type BatchOperation struct {
	ID      string
	Execute func(ctx context.Context) (interface{}, error)
}

// BatchResult is the outcome of one batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs independent API operations concurrently with bounded
// parallelism. Each operation owns its own request state, so operations
// never coordinate beyond the worker pool.
type BatchExecutor struct {
	concurrency int
}

// NewBatchExecutor creates an executor. A non-positive concurrency falls
// back to the default limit.
func NewBatchExecutor(concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{concurrency: concurrency}
}

// Execute runs all operations and returns results in operation order. A
// canceled context stops new operations from starting; operations already
// in flight record the context error through their own request.
func (e *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))
	semaphore := make(chan struct{}, e.concurrency)

	var waitGroup sync.WaitGroup

	for i, op := range operations {
		if ctx.Err() != nil {
			results[i] = BatchResult{ID: op.ID, Error: ctx.Err()}

			continue
		}

		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			started := time.Now()
			data, err := operation.Execute(ctx)

			results[index] = BatchResult{
				ID:       operation.ID,
				Success:  err == nil,
				Data:     data,
				Error:    err,
				Duration: time.Since(started),
			}
		}(i, op)
	}

	waitGroup.Wait()

	return results
}
