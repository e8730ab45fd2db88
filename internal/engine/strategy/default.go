package strategy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ Strategy = (*DefaultStrategy)(nil)

// DefaultStrategy builds each definition exactly once in a scratch
// directory and fans the result out to every unit that shares it.
type DefaultStrategy struct {
	graph           *domain.BuildGraph
	buildDir        string
	functionBuilder ports.FunctionBuilder
	layerBuilder    ports.LayerBuilder
	copier          ports.Copier
	logger          ports.Logger
	progress        ports.Progress
	specific        bool
}

// NewDefault creates a DefaultStrategy writing artifacts under buildDir.
// specific marks the run as scoped to explicitly named resources.
func NewDefault(
	g *domain.BuildGraph,
	buildDir string,
	functionBuilder ports.FunctionBuilder,
	layerBuilder ports.LayerBuilder,
	copier ports.Copier,
	logger ports.Logger,
	progress ports.Progress,
	specific bool,
) *DefaultStrategy {
	return &DefaultStrategy{
		graph:           g,
		buildDir:        buildDir,
		functionBuilder: functionBuilder,
		layerBuilder:    layerBuilder,
		copier:          copier,
		logger:          logger,
		progress:        progress,
		specific:        specific,
	}
}

// Build builds every definition in the graph.
func (s *DefaultStrategy) Build(ctx context.Context) (domain.ArtifactIndex, error) {
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

// BuildFunctionDefinition builds the definition once into a temporary
// directory, then copies the artifact into one directory per attached
// function. The scratch directory is removed afterwards.
func (s *DefaultStrategy) BuildFunctionDefinition(ctx context.Context, def *domain.FunctionBuildDefinition) (domain.ArtifactIndex, error) {
	rep, err := def.Representative()
	if err != nil {
		return nil, err
	}

	names := strings.Join(def.UnitNames(), ", ")
	s.logger.Info(fmt.Sprintf("building functions %s (codeuri: %s, runtime: %s)", names, def.CodeURI, def.Runtime))

	vertex := s.progress.Vertex("build " + names)

	scratch, err := os.MkdirTemp("", "slab-build-")
	if err != nil {
		err = zerr.Wrap(err, "failed to create scratch build directory")
		vertex.Complete(err)
		return nil, err
	}
	defer os.RemoveAll(scratch)

	if err := s.functionBuilder.BuildFunction(ctx, rep.Name, def.CodeURI, def.Runtime, rep.Handler, scratch, def.Metadata, vertex.Stdout()); err != nil {
		err = zerr.With(err, "function", rep.Name)
		vertex.Complete(err)
		return nil, err
	}

	result := domain.ArtifactIndex{}
	for _, fn := range def.Functions {
		artifactDir := filepath.Join(s.buildDir, fn.Name)
		if err := s.copier.CopyTree(scratch, artifactDir); err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to copy build artifacts"), "function", fn.Name)
			vertex.Complete(err)
			return nil, err
		}
		result[fn.Name] = artifactDir
	}
	vertex.Complete(nil)
	return result, nil
}

// BuildLayerDefinition builds the definition's layer into its own
// directory under the build dir.
func (s *DefaultStrategy) BuildLayerDefinition(ctx context.Context, def *domain.LayerBuildDefinition) (domain.ArtifactIndex, error) {
	layer := def.Layer
	if layer == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyDefinition, "cannot build layer definition"), "definition_id", def.ID)
	}
	if layer.BuildMethod == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingBuildMethod, "cannot build layer"), "layer", layer.Name)
	}

	s.logger.Info(fmt.Sprintf("building layer %s (codeuri: %s, build method: %s)", layer.Name, layer.CodeURI, layer.BuildMethod))

	vertex := s.progress.Vertex("build " + layer.Name)
	artifactDir, err := s.layerBuilder.BuildLayer(ctx, layer.Name, layer.CodeURI, layer.BuildMethod, layer.CompatibleRuntimes, vertex.Stdout())
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.With(err, "layer", layer.Name)
	}
	return domain.ArtifactIndex{layer.Name: artifactDir}, nil
}

// TargetsSpecificResources reports whether the run is scoped to named
// resources.
func (s *DefaultStrategy) TargetsSpecificResources() bool {
	return s.specific
}

// Open acquires nothing.
func (s *DefaultStrategy) Open(context.Context) error {
	return nil
}

// Close releases nothing.
func (s *DefaultStrategy) Close() error {
	return nil
}
