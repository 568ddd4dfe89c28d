package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowFunc renders a single image row
type RowFunc func(ctx context.Context, row int) error

// WorkerPool runs row tasks on a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run calls fn once for every row in [0, rows) and waits for all calls to
// finish. The first error cancels rows that have not started yet and is
// returned. Cancellation is checked between rows only.
func (wp *WorkerPool) Run(ctx context.Context, rows int, fn RowFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for row := 0; row < rows; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, row)
		})
	}

	return g.Wait()
}
