package progrock_test

import (
	"errors"
	"testing"

	"github.com/slab-sh/slab/internal/adapters/telemetry/progrock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_VertexLifecycle(t *testing.T) {
	recorder := progrock.New()

	v := recorder.Vertex("build api")
	require.NotNil(t, v)
	_, err := v.Stdout().Write([]byte("compiling\n"))
	require.NoError(t, err)
	v.Cached()
	v.Complete(nil)

	failed := recorder.Vertex("build worker")
	failed.Complete(errors.New("boom"))

	assert.NoError(t, recorder.Close())
}
