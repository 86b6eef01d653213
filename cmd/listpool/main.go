package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/listpool/algo"
	"github.com/outofforest/listpool/alloc"
	"github.com/outofforest/logger"
)

type config struct {
	Reserve      uint64
	NumOfWorkers uint64
	NumOfNodes   uint64
	NumOfRounds  uint64
}

func main() {
	var cfg config

	flags := pflag.NewFlagSet("listpool", pflag.ExitOnError)
	flags.Uint64Var(&cfg.Reserve, "reserve", 16, "Number of nodes to reserve in the pool")
	flags.Uint64Var(&cfg.NumOfWorkers, "workers", 4, "Number of goroutines sharing the pool")
	flags.Uint64Var(&cfg.NumOfNodes, "nodes", 1000, "Number of nodes in each list built by a worker")
	flags.Uint64Var(&cfg.NumOfRounds, "rounds", 10, "Number of lists each worker builds and releases")
	_ = flags.Parse(os.Args[1:])

	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))
	if err := run(ctx, cfg); err != nil {
		logger.Get(ctx).Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	if err := runScenario(ctx, cfg); err != nil {
		return err
	}
	return runShared(ctx, cfg)
}

func runScenario(ctx context.Context, cfg config) error {
	log := logger.Get(ctx)

	pool := alloc.New[int, uint16](alloc.Config{Reserve: cfg.Reserve})

	l1 := pool.NewList()
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5} {
		l1 = pool.PushFront(v, l1)
	}
	l2 := pool.NewList()
	for _, v := range []int{8, 9, 7, 9, 3, 1, 1, 5, 9, 9, 7} {
		l2 = pool.PushFront(v, l2)
	}

	maxIt := algo.MaxElement[int](pool.Begin(l1), pool.IteratorEnd(l1))
	minIt := algo.MinElement[int](pool.Begin(l2), pool.IteratorEnd(l2))

	log.Info("Lists built",
		zap.Ints("list1", algo.Collect[int](pool.Begin(l1), pool.IteratorEnd(l1))),
		zap.Ints("list2", algo.Collect[int](pool.Begin(l2), pool.IteratorEnd(l2))),
		zap.Int("max1", maxIt.Value()),
		zap.Uint16("max1Address", maxIt.Address()),
		zap.Int("min2", minIt.Value()),
		zap.Uint16("min2Address", minIt.Address()),
		zap.Uint64("capacity", pool.Capacity()))

	capacity := pool.Capacity()
	l1 = pool.FreeList(l1)

	l3 := pool.NewList()
	for _, v := range []int{2, 7, 1, 8, 2, 8} {
		l3 = pool.PushBack(v, l3)
	}
	if pool.Capacity() != capacity {
		return errors.Errorf("capacity changed from %d to %d while reusing nodes", capacity, pool.Capacity())
	}

	log.Info("Nodes reused",
		zap.Ints("list3", algo.Collect[int](pool.Begin(l3), pool.IteratorEnd(l3))),
		zap.Uint64("free", pool.NumOfFree()),
		zap.Uint64("size", pool.Size()),
		zap.Uint64("capacity", pool.Capacity()))

	return errors.Wrap(pool.Verify(l1, l2, l3), "pool verification failed")
}

func runShared(ctx context.Context, cfg config) error {
	pool := alloc.NewLocked(alloc.New[uint64, uint32](alloc.Config{Reserve: cfg.Reserve}))

	digests := make([]uint64, cfg.NumOfWorkers)
	err := alloc.RunWorkers(ctx, pool, cfg.NumOfWorkers,
		func(ctx context.Context, worker uint64, pool *alloc.Locked[uint64, uint32]) error {
			for round := range cfg.NumOfRounds {
				if err := ctx.Err(); err != nil {
					return errors.WithStack(err)
				}

				var head, tail uint32
				var digest, length uint64
				pool.Do(func(p *alloc.Pool[uint64, uint32]) {
					for i := range cfg.NumOfNodes {
						if head == p.End() {
							head = p.PushFront(i, head)
							tail = head
							continue
						}
						tail = p.PushAfter(i, tail)
					}
					digest = alloc.Digest(p, head)
					length = p.Len(head)
					p.FreeList(head)
				})

				if length != cfg.NumOfNodes {
					return errors.Errorf("worker %d round %d: expected %d nodes, got %d", worker, round,
						cfg.NumOfNodes, length)
				}
				if round > 0 && digest != digests[worker] {
					return errors.Errorf("worker %d round %d: digest mismatch", worker, round)
				}
				digests[worker] = digest
			}
			return nil
		})
	if err != nil {
		return err
	}

	var verifyErr error
	pool.Do(func(p *alloc.Pool[uint64, uint32]) {
		logger.Get(ctx).Info("Shared pool released",
			zap.Uint64("workers", cfg.NumOfWorkers),
			zap.Uint64("size", p.Size()),
			zap.Uint64("free", p.NumOfFree()),
			zap.Uint64("capacity", p.Capacity()))
		verifyErr = p.Verify()
	})
	return errors.Wrap(verifyErr, "shared pool verification failed")
}
