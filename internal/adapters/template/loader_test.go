package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slab-sh/slab/internal/adapters/template"
	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/slab-sh/slab/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), template.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLoader(t *testing.T) *template.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return template.NewLoader(log)
}

func TestLoader_Load(t *testing.T) {
	path := writeTemplate(t, `
version: "1"
functions:
  api:
    handler: app.handler
    runtime: python3.12
    codeuri: src/api
  worker:
    handler: worker.handler
    runtime: python3.12
    codeuri: src/worker
    metadata:
      BuildMethod: makefile
layers:
  deps:
    codeuri: layers/deps
    build_method: python3.12
    compatible_runtimes: [python3.12]
`)

	tmpl, err := newLoader(t).Load(path)
	require.NoError(t, err)

	require.Len(t, tmpl.Functions, 2)
	api := tmpl.Function("api")
	require.NotNil(t, api)
	assert.Equal(t, "app.handler", api.Handler)
	assert.Equal(t, "python3.12", api.Runtime)
	assert.Equal(t, "src/api", api.CodeURI)
	assert.NotNil(t, api.Metadata)

	worker := tmpl.Function("worker")
	require.NotNil(t, worker)
	assert.Equal(t, domain.BuildMethodMakefile, worker.Metadata[domain.MetadataBuildMethodKey])

	require.Len(t, tmpl.Layers, 1)
	deps := tmpl.Layer("deps")
	require.NotNil(t, deps)
	assert.Equal(t, "layers/deps", deps.CodeURI)
	assert.Equal(t, "python3.12", deps.BuildMethod)
	assert.Equal(t, []string{"python3.12"}, deps.CompatibleRuntimes)
}

func TestLoader_Load_DeterministicOrder(t *testing.T) {
	path := writeTemplate(t, `
functions:
  zeta: {handler: z.handler, runtime: go1.x, codeuri: src/z}
  alpha: {handler: a.handler, runtime: go1.x, codeuri: src/a}
`)

	tmpl, err := newLoader(t).Load(path)
	require.NoError(t, err)
	require.Len(t, tmpl.Functions, 2)
	assert.Equal(t, "alpha", tmpl.Functions[0].Name)
	assert.Equal(t, "zeta", tmpl.Functions[1].Name)
}

func TestLoader_Load_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing runtime", "functions:\n  api: {handler: a, codeuri: src/api}\n"},
		{"missing function codeuri", "functions:\n  api: {handler: a, runtime: python3.12}\n"},
		{"missing layer codeuri", "layers:\n  deps: {build_method: python3.12}\n"},
		{"unparsable", "functions: [not a mapping\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeTemplate(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoader_Load_EmptyTemplate(t *testing.T) {
	_, err := newLoader(t).Load(writeTemplate(t, "version: \"1\"\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoResources)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
