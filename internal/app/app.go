// Package app implements the application layer for slab.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slab-sh/slab/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/slab-sh/slab/internal/core/ports"
	"github.com/slab-sh/slab/internal/engine/strategy"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger      ports.Logger
	templates   ports.TemplateLoader
	checksummer ports.Checksummer
	copier      ports.Copier
	executor    *shell.Executor
	tracer      ports.Tracer
}

// New creates a new App instance.
func New(
	logger ports.Logger,
	templates ports.TemplateLoader,
	checksummer ports.Checksummer,
	copier ports.Copier,
	executor *shell.Executor,
	tracer ports.Tracer,
) *App {
	return &App{
		logger:      logger,
		templates:   templates,
		checksummer: checksummer,
		copier:      copier,
		executor:    executor,
		tracer:      tracer,
	}
}

// BuildOptions configures one build run.
type BuildOptions struct {
	// TemplatePath locates the application template.
	TemplatePath string
	// BaseDir resolves relative code URIs; defaults to the template's
	// directory.
	BaseDir string
	// BuildDir receives one artifact directory per build unit. Its sibling
	// holds the persisted build graph manifest.
	BuildDir string
	// CacheDir holds cached artifacts; defaults to a sibling of BuildDir.
	CacheDir string
	// Cached enables checksum-gated artifact reuse.
	Cached bool
	// Parallel builds independent definitions concurrently.
	Parallel bool
	// Workers bounds the parallel worker pool; non-positive means one per
	// CPU.
	Workers int
	// Progress records per-definition build progress for rendering.
	Progress bool
	// Resources scopes the run to the named functions and layers. Empty
	// means build everything.
	Resources []string
}

// Build loads the template, reconciles the persisted build graph with it,
// and runs the configured strategy chain over the result. It returns the
// mapping of build unit name to artifact directory.
func (a *App) Build(ctx context.Context, opts BuildOptions) (domain.ArtifactIndex, error) {
	ctx, span := a.tracer.Start(ctx, "build")
	defer span.End()

	result, err := a.build(ctx, opts, span)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return result, nil
}

func (a *App) build(ctx context.Context, opts BuildOptions, span ports.Span) (domain.ArtifactIndex, error) {
	tmpl, err := a.templates.Load(opts.TemplatePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load application template")
	}

	scoped, err := scopeTemplate(tmpl, opts.Resources)
	if err != nil {
		return nil, err
	}
	specific := len(opts.Resources) > 0

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(opts.TemplatePath)
	}

	// Code URIs are anchored to the base dir up front so that building,
	// checksumming, and deduplication all see the same path regardless of
	// the working directory.
	for _, fn := range scoped.Functions {
		fn.CodeURI = resolvePath(baseDir, fn.CodeURI)
	}
	for _, layer := range scoped.Layers {
		layer.CodeURI = resolvePath(baseDir, layer.CodeURI)
	}

	store := manifest.NewStoreFor(opts.BuildDir)
	persisted, err := store.Load()
	if err != nil {
		return nil, err
	}

	graph := domain.NewBuildGraph(store)
	graph.Restore(persisted)
	for _, fn := range scoped.Functions {
		def := domain.NewFunctionBuildDefinition(fn.Runtime, fn.CodeURI, fn.Metadata)
		graph.PutFunctionDefinition(def, fn)
	}
	for _, layer := range scoped.Layers {
		def := domain.NewLayerBuildDefinition(layer.Name, layer.CodeURI, layer.BuildMethod, layer.CompatibleRuntimes)
		graph.PutLayerDefinition(def, layer)
	}
	if err := graph.PruneAndPersist(!specific); err != nil {
		return nil, err
	}
	span.SetAttribute("function_definitions", len(graph.FunctionDefinitions()))
	span.SetAttribute("layer_definitions", len(graph.LayerDefinitions()))

	if err := os.MkdirAll(opts.BuildDir, 0o755); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create build directory"), "dir", opts.BuildDir)
	}

	builder := shell.NewBuilder(a.executor, a.copier, a.logger, opts.BuildDir)
	progress := newProgress(opts.Progress)

	var s strategy.Strategy = strategy.NewDefault(
		graph, opts.BuildDir, builder, builder, a.copier, a.logger, progress, specific,
	)
	if opts.Cached {
		cacheDir := opts.CacheDir
		if cacheDir == "" {
			cacheDir = filepath.Join(filepath.Dir(filepath.Clean(opts.BuildDir)), "cache")
		}
		artifacts, err := cache.NewStore(cacheDir, a.copier)
		if err != nil {
			return nil, err
		}
		s = strategy.NewCached(
			graph, s, baseDir, opts.BuildDir, artifacts, a.checksummer, a.logger, progress,
		)
	}
	if opts.Parallel {
		s = strategy.NewParallel(graph, s, opts.Workers)
	}

	result, err := s.Build(ctx)
	if err != nil {
		_ = progress.Close()
		return nil, zerr.Wrap(err, "build execution failed")
	}
	if err := progress.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to flush the progress session")
	}
	a.logger.Info(fmt.Sprintf("built %d artifacts into %s", len(result), opts.BuildDir))
	return result, nil
}

// newProgress returns the recording session for one run. Rendering is
// opt-in; the default session records nothing.
func newProgress(enabled bool) ports.Progress {
	if enabled {
		return progrock.New()
	}
	return telemetry.NewNoOpProgress()
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// scopeTemplate narrows the template to the named resources. Every name
// must resolve to a declared function or layer.
func scopeTemplate(t *domain.Template, names []string) (*domain.Template, error) {
	if len(names) == 0 {
		return t, nil
	}
	scoped := &domain.Template{}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if fn := t.Function(name); fn != nil {
			scoped.Functions = append(scoped.Functions, fn)
			continue
		}
		if layer := t.Layer(name); layer != nil {
			scoped.Layers = append(scoped.Layers, layer)
			continue
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownResource, "cannot scope the build"), "resource", name)
	}
	return scoped, nil
}
