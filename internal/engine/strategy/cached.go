package strategy

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ Strategy = (*CachedStrategy)(nil)

// CachedStrategy wraps another strategy and skips its build when the
// definition's source directory checksum matches the one recorded on the
// last successful build and a cache entry exists. On a hit the cached
// artifact is copied to every unit; on a miss the delegate builds and the
// cache entry is replaced.
type CachedStrategy struct {
	graph       *domain.BuildGraph
	delegate    Strategy
	baseDir     string
	buildDir    string
	cache       ports.ArtifactCache
	checksummer ports.Checksummer
	logger      ports.Logger
	progress    ports.Progress
}

// NewCached wraps delegate with checksum-gated caching. Relative code
// URIs are resolved against baseDir.
func NewCached(
	g *domain.BuildGraph,
	delegate Strategy,
	baseDir string,
	buildDir string,
	cache ports.ArtifactCache,
	checksummer ports.Checksummer,
	logger ports.Logger,
	progress ports.Progress,
) *CachedStrategy {
	return &CachedStrategy{
		graph:       g,
		delegate:    delegate,
		baseDir:     baseDir,
		buildDir:    buildDir,
		cache:       cache,
		checksummer: checksummer,
		logger:      logger,
		progress:    progress,
	}
}

// Build builds every definition in the graph, then runs teardown even
// when a definition failed.
func (s *CachedStrategy) Build(ctx context.Context) (domain.ArtifactIndex, error) {
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

// BuildFunctionDefinition serves the definition from cache when its
// source is unchanged, otherwise delegates and refreshes the cache entry.
func (s *CachedStrategy) BuildFunctionDefinition(ctx context.Context, def *domain.FunctionBuildDefinition) (domain.ArtifactIndex, error) {
	checksum, err := s.checksummer.DirChecksum(s.resolve(def.CodeURI))
	if err != nil {
		return nil, zerr.With(err, "definition_id", def.ID)
	}

	if !s.cache.Has(def.ID) || def.SourceChecksum != checksum {
		s.logger.Info(fmt.Sprintf("cache miss for %s, running build", strings.Join(def.UnitNames(), ", ")))
		result, err := s.delegate.BuildFunctionDefinition(ctx, def)
		if err != nil {
			return nil, err
		}
		def.SourceChecksum = checksum
		for _, fn := range def.Functions {
			artifactDir, ok := result[fn.Name]
			if !ok {
				continue
			}
			if err := s.cache.Replace(def.ID, artifactDir); err != nil {
				return nil, err
			}
			break
		}
		return result, nil
	}

	names := strings.Join(def.UnitNames(), ", ")
	s.logger.Info(fmt.Sprintf("source of %s unchanged, reusing cached artifacts", names))
	vertex := s.progress.Vertex("build " + names)
	vertex.Cached()

	result := domain.ArtifactIndex{}
	for _, fn := range def.Functions {
		artifactDir := filepath.Join(s.buildDir, fn.Name)
		if err := s.cache.CopyTo(def.ID, artifactDir); err != nil {
			vertex.Complete(err)
			return nil, err
		}
		result[fn.Name] = artifactDir
	}
	vertex.Complete(nil)
	return result, nil
}

// BuildLayerDefinition serves the layer from cache when its source is
// unchanged, otherwise delegates and refreshes the cache entry.
func (s *CachedStrategy) BuildLayerDefinition(ctx context.Context, def *domain.LayerBuildDefinition) (domain.ArtifactIndex, error) {
	layer := def.Layer
	if layer == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyDefinition, "cannot build layer definition"), "definition_id", def.ID)
	}

	checksum, err := s.checksummer.DirChecksum(s.resolve(def.CodeURI))
	if err != nil {
		return nil, zerr.With(err, "definition_id", def.ID)
	}

	if !s.cache.Has(def.ID) || def.SourceChecksum != checksum {
		s.logger.Info(fmt.Sprintf("cache miss for layer %s, running build", layer.Name))
		result, err := s.delegate.BuildLayerDefinition(ctx, def)
		if err != nil {
			return nil, err
		}
		def.SourceChecksum = checksum
		if artifactDir, ok := result[layer.Name]; ok {
			if err := s.cache.Replace(def.ID, artifactDir); err != nil {
				return nil, err
			}
		}
		return result, nil
	}

	s.logger.Info(fmt.Sprintf("source of layer %s unchanged, reusing cached artifacts", layer.Name))
	vertex := s.progress.Vertex("build " + layer.Name)
	vertex.Cached()

	artifactDir := filepath.Join(s.buildDir, layer.Name)
	if err := s.cache.CopyTo(def.ID, artifactDir); err != nil {
		vertex.Complete(err)
		return nil, err
	}
	vertex.Complete(nil)
	return domain.ArtifactIndex{layer.Name: artifactDir}, nil
}

// TargetsSpecificResources reports the delegate's scoping.
func (s *CachedStrategy) TargetsSpecificResources() bool {
	return s.delegate.TargetsSpecificResources()
}

// Open discards checksums memoized by earlier runs and opens the
// delegate. Without the reset a second run in the same process would
// validate the cache against stale hashes.
func (s *CachedStrategy) Open(ctx context.Context) error {
	s.checksummer.Reset()
	return s.delegate.Open(ctx)
}

// Close persists the pruned graph and sweeps cache entries whose
// definitions no longer exist. Scoped runs skip both so that excluded
// resources keep their state. The delegate is closed last.
func (s *CachedStrategy) Close() error {
	var err error
	if !s.delegate.TargetsSpecificResources() {
		err = s.graph.PruneAndPersist(true)
		if err == nil {
			err = s.cache.Prune(s.graph.LiveIDs())
		}
	}
	return errors.Join(err, s.delegate.Close())
}

func (s *CachedStrategy) resolve(codeURI string) string {
	if filepath.IsAbs(codeURI) {
		return filepath.Clean(codeURI)
	}
	return filepath.Join(s.baseDir, codeURI)
}
