package strategy

import (
	"context"
	"runtime"
	"sync"

	"github.com/slab-sh/slab/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

var _ Strategy = (*ParallelStrategy)(nil)

// ParallelStrategy wraps another strategy and builds independent
// definitions concurrently on a bounded worker pool. Per-definition
// results merge first-writer-wins, which is safe because definitions
// never share a unit name.
type ParallelStrategy struct {
	graph    *domain.BuildGraph
	delegate Strategy
	workers  int
}

// NewParallel wraps delegate with a pool of workers goroutines. A
// non-positive workers defaults to the number of CPUs.
func NewParallel(g *domain.BuildGraph, delegate Strategy, workers int) *ParallelStrategy {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelStrategy{
		graph:    g,
		delegate: delegate,
		workers:  workers,
	}
}

// Build submits every definition to the pool, waits for all of them, and
// merges the results. The first failure is reported; teardown still runs.
func (s *ParallelStrategy) Build(ctx context.Context) (domain.ArtifactIndex, error) {
	if err := s.Open(ctx); err != nil {
		return nil, err
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	var mu sync.Mutex
	result := domain.ArtifactIndex{}

	for _, def := range s.graph.FunctionDefinitions() {
		group.Go(func() error {
			partial, err := s.BuildFunctionDefinition(gctx, def)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			result.Merge(partial)
			return nil
		})
	}
	for _, def := range s.graph.LayerDefinitions() {
		group.Go(func() error {
			partial, err := s.BuildLayerDefinition(gctx, def)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			result.Merge(partial)
			return nil
		})
	}

	err := group.Wait()
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BuildFunctionDefinition delegates a single definition build.
func (s *ParallelStrategy) BuildFunctionDefinition(ctx context.Context, def *domain.FunctionBuildDefinition) (domain.ArtifactIndex, error) {
	return s.delegate.BuildFunctionDefinition(ctx, def)
}

// BuildLayerDefinition delegates a single definition build.
func (s *ParallelStrategy) BuildLayerDefinition(ctx context.Context, def *domain.LayerBuildDefinition) (domain.ArtifactIndex, error) {
	return s.delegate.BuildLayerDefinition(ctx, def)
}

// TargetsSpecificResources reports the delegate's scoping.
func (s *ParallelStrategy) TargetsSpecificResources() bool {
	return s.delegate.TargetsSpecificResources()
}

// Open opens the delegate.
func (s *ParallelStrategy) Open(ctx context.Context) error {
	return s.delegate.Open(ctx)
}

// Close closes the delegate.
func (s *ParallelStrategy) Close() error {
	return s.delegate.Close()
}
