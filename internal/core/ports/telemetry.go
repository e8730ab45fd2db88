package ports

import (
	"context"
	"io"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Progress records per-definition build progress for rendering.
type Progress interface {
	// Vertex starts recording one definition's build.
	Vertex(name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded build in a progress session.
type Vertex interface {
	// Stdout returns a writer capturing the build's output stream.
	Stdout() io.Writer
	// Cached marks the vertex as a cache hit.
	Cached()
	// Complete marks the vertex as finished, successfully or with err.
	Complete(err error)
}
