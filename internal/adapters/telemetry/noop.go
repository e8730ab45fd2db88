package telemetry

import (
	"context"
	"io"

	"github.com/slab-sh/slab/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(error) {}

// SetAttribute does nothing.
func (s *NoOpSpan) SetAttribute(string, any) {}

// NoOpProgress is a no-op implementation of ports.Progress.
type NoOpProgress struct{}

// NewNoOpProgress creates a new NoOpProgress.
func NewNoOpProgress() *NoOpProgress {
	return &NoOpProgress{}
}

// Vertex returns a no-op vertex.
func (p *NoOpProgress) Vertex(string) ports.Vertex {
	return &NoOpVertex{}
}

// Close does nothing.
func (p *NoOpProgress) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards the build's output stream.
func (v *NoOpVertex) Stdout() io.Writer {
	return io.Discard
}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}

// Complete does nothing.
func (v *NoOpVertex) Complete(error) {}
