// Package progrock provides the Progrock implementation of the progress
// port.
package progrock

import (
	"github.com/opencontainers/go-digest"
	"github.com/slab-sh/slab/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.Progress = (*Recorder)(nil)

// Recorder implements ports.Progress on a progrock recording session; one
// vertex is recorded per build definition.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder over the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Vertex starts recording one definition's build.
func (r *Recorder) Vertex(name string) ports.Vertex {
	d := digest.FromString(name)
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
