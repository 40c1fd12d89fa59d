package renderer

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// progressInterval is the number of completed rows between progress reports
const progressInterval = 10

// RowFunc renders a single scanline. It must only write pixels of its own row.
type RowFunc func(ctx context.Context, row int) error

// WorkerPool evaluates rows in parallel with a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
	onProgress func(remaining int)
}

// NewWorkerPool creates a pool with the specified number of workers;
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// OnProgress registers a callback fired every progressInterval completed rows
// with the number of rows still outstanding. It may be called concurrently.
func (wp *WorkerPool) OnProgress(fn func(remaining int)) {
	wp.onProgress = fn
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders rows [0, numRows) and waits for all of them. The first error
// cancels the remaining rows and is returned.
func (wp *WorkerPool) Run(ctx context.Context, numRows int, render RowFunc) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	var completed atomic.Int64
	for row := 0; row < numRows; row++ {
		if gctx.Err() != nil {
			break
		}
		row := row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := render(gctx, row); err != nil {
				return err
			}
			done := int(completed.Add(1))
			if wp.onProgress != nil && done%progressInterval == 0 {
				wp.onProgress(numRows - done)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Rows skipped after cancellation leave no error in the group
	return ctx.Err()
}
