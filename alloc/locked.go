package alloc

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/outofforest/listpool/types"
	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
)

// NewLocked wraps pool so it might be shared by many goroutines.
func NewLocked[T any, A types.Address](pool *Pool[T, A]) *Locked[T, A] {
	return &Locked[T, A]{
		pool: pool,
	}
}

// Locked guards the whole pool with a single mutex.
// Addresses and pointers obtained inside Do must not be dereferenced outside of it.
type Locked[T any, A types.Address] struct {
	mu   sync.Mutex
	pool *Pool[T, A]
}

// Do runs fn having exclusive access to the pool.
func (l *Locked[T, A]) Do(fn func(pool *Pool[T, A])) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fn(l.pool)
}

// WorkerFunc is the function executed by each worker started by RunWorkers.
type WorkerFunc[T any, A types.Address] func(ctx context.Context, worker uint64, pool *Locked[T, A]) error

// RunWorkers runs numOfWorkers goroutines sharing the pool and waits until all of them finish.
// If any of them fails, the others are canceled and the first error is returned.
func RunWorkers[T any, A types.Address](
	ctx context.Context,
	pool *Locked[T, A],
	numOfWorkers uint64,
	fn WorkerFunc[T, A],
) error {
	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i := range numOfWorkers {
			spawn(fmt.Sprintf("worker-%02d", i), parallel.Continue, func(ctx context.Context) error {
				if err := fn(ctx, i, pool); err != nil {
					return err
				}

				logger.Get(ctx).Debug("Worker finished", zap.Uint64("worker", i))
				return nil
			})
		}
		return nil
	})
}
