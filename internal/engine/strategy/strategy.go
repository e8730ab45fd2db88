// Package strategy implements the build strategies that turn a build
// graph into artifacts: a default one-build-per-definition strategy and
// the caching and parallelizing decorators that wrap it.
package strategy

import (
	"context"

	"github.com/slab-sh/slab/internal/core/domain"
)

// Strategy builds every definition in a build graph and returns the
// mapping of build unit name to artifact location. Decorators wrap the
// single-definition methods; Open and Close bracket a whole Build call so
// wrappers can acquire and release resources exactly once, on every exit
// path.
type Strategy interface {
	// Build builds all function and layer definitions in the graph.
	Build(ctx context.Context) (domain.ArtifactIndex, error)

	// BuildFunctionDefinition builds one function definition and fans the
	// artifact out to every attached unit.
	BuildFunctionDefinition(ctx context.Context, def *domain.FunctionBuildDefinition) (domain.ArtifactIndex, error)

	// BuildLayerDefinition builds one layer definition.
	BuildLayerDefinition(ctx context.Context, def *domain.LayerBuildDefinition) (domain.ArtifactIndex, error)

	// TargetsSpecificResources reports whether this run builds a subset of
	// the declared resources rather than the whole graph. Teardown logic
	// uses it to decide whether absent definitions are stale or merely
	// excluded.
	TargetsSpecificResources() bool

	// Open acquires the strategy's resources before any build.
	Open(ctx context.Context) error

	// Close releases them after all builds, including failed ones.
	Close() error
}

// buildAll drives s's single-definition methods over the graph in
// insertion order, merging the per-definition results. The first failure
// aborts the pass.
func buildAll(ctx context.Context, g *domain.BuildGraph, s Strategy) (domain.ArtifactIndex, error) {
	result := domain.ArtifactIndex{}
	for _, def := range g.FunctionDefinitions() {
		partial, err := s.BuildFunctionDefinition(ctx, def)
		if err != nil {
			return nil, err
		}
		result.Merge(partial)
	}
	for _, def := range g.LayerDefinitions() {
		partial, err := s.BuildLayerDefinition(ctx, def)
		if err != nil {
			return nil, err
		}
		result.Merge(partial)
	}
	return result, nil
}

// Base is the inert strategy: it visits every definition and builds
// nothing. It anchors the decorator chain in tests that only exercise
// wrapper behavior.
type Base struct {
	graph *domain.BuildGraph
}

// NewBase creates an inert strategy over the graph.
func NewBase(g *domain.BuildGraph) *Base {
	return &Base{graph: g}
}

// Build visits all definitions and returns an empty index.
func (s *Base) Build(ctx context.Context) (domain.ArtifactIndex, error) {
	if err := s.Open(ctx); err != nil {
		return nil, err
	}
	result, err := buildAll(ctx, s.graph, s)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BuildFunctionDefinition builds nothing.
func (s *Base) BuildFunctionDefinition(context.Context, *domain.FunctionBuildDefinition) (domain.ArtifactIndex, error) {
	return domain.ArtifactIndex{}, nil
}

// BuildLayerDefinition builds nothing.
func (s *Base) BuildLayerDefinition(context.Context, *domain.LayerBuildDefinition) (domain.ArtifactIndex, error) {
	return domain.ArtifactIndex{}, nil
}

// TargetsSpecificResources always reports a whole-graph run.
func (s *Base) TargetsSpecificResources() bool {
	return false
}

// Open acquires nothing.
func (s *Base) Open(context.Context) error {
	return nil
}

// Close releases nothing.
func (s *Base) Close() error {
	return nil
}
