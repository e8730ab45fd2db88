package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// FunctionBuilder is the external compiler/packager boundary. It turns a
// function's source into an artifact inside outputDir. Build output is
// streamed to the output writer. The orchestration core treats the
// builder as opaque and never retries it.
type FunctionBuilder interface {
	BuildFunction(
		ctx context.Context,
		name, codeURI, runtime, handler, outputDir string,
		metadata map[string]string,
		output io.Writer,
	) error
}

// LayerBuilder is the external layer builder boundary. It builds the layer
// and returns the directory the artifact was written to. Build output is
// streamed to the output writer.
type LayerBuilder interface {
	BuildLayer(
		ctx context.Context,
		name, codeURI, buildMethod string,
		compatibleRuntimes []string,
		output io.Writer,
	) (string, error)
}
