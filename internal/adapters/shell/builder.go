// Package shell provides the default build callbacks: makefile-driven
// builds shell out to make, everything else packages the source tree
// as-is.
package shell

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.FunctionBuilder = (*Builder)(nil)
	_ ports.LayerBuilder    = (*Builder)(nil)
)

// Builder implements the function and layer build callbacks. It is the
// boundary the strategies treat as opaque; failures propagate unchanged
// and are never retried here.
type Builder struct {
	executor *Executor
	copier   ports.Copier
	logger   ports.Logger

	// buildDir receives layer artifacts, one subdirectory per layer.
	buildDir string
}

// NewBuilder creates a Builder writing layer artifacts under buildDir.
func NewBuilder(executor *Executor, copier ports.Copier, logger ports.Logger, buildDir string) *Builder {
	return &Builder{
		executor: executor,
		copier:   copier,
		logger:   logger,
		buildDir: buildDir,
	}
}

// BuildFunction builds one function definition's source into outputDir.
// A "makefile" build method runs `make build-<name>` inside the source
// directory with ARTIFACTS_DIR pointing at outputDir; any other runtime
// is packaged by copying the source tree verbatim.
func (b *Builder) BuildFunction(
	ctx context.Context,
	name, codeURI, _, _, outputDir string,
	metadata map[string]string,
	output io.Writer,
) error {
	if metadata[domain.MetadataBuildMethodKey] == domain.BuildMethodMakefile {
		return b.runMake(ctx, name, codeURI, outputDir, output)
	}
	if err := b.copier.CopyTree(codeURI, outputDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to package function source"), "function", name)
	}
	return nil
}

// BuildLayer builds a layer and returns the directory holding its
// artifact.
func (b *Builder) BuildLayer(
	ctx context.Context,
	name, codeURI, buildMethod string,
	_ []string,
	output io.Writer,
) (string, error) {
	outputDir := filepath.Join(b.buildDir, name)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create layer output directory"), "layer", name)
	}

	if buildMethod == domain.BuildMethodMakefile {
		if err := b.runMake(ctx, name, codeURI, outputDir, output); err != nil {
			return "", err
		}
		return outputDir, nil
	}

	if err := b.copier.CopyTree(codeURI, outputDir); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to package layer source"), "layer", name)
	}
	return outputDir, nil
}

// runMake invokes the unit's build target, the `build-<name>` contract
// used by makefile-driven serverless builds.
func (b *Builder) runMake(ctx context.Context, name, codeURI, outputDir string, output io.Writer) error {
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve artifacts directory"), "path", outputDir)
	}
	err = b.executor.Run(ctx, codeURI, []string{"ARTIFACTS_DIR=" + absOut}, output, "make", "build-"+name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "makefile build failed"), "unit", name)
	}
	return nil
}
