package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slab-sh/slab/internal/adapters/manifest"
	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := manifest.NewStore(filepath.Join(t.TempDir(), manifest.FileName))

	m, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, m.Functions)
	assert.Empty(t, m.Layers)
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.FileName)
	require.NoError(t, os.WriteFile(path, []byte("function_build_definitions: [not: a: mapping"), 0o644))

	_, err := manifest.NewStore(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestMalformed)

	zErr := &zerr.Error{}
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, path, meta["path"])
	assert.NotEmpty(t, meta["parse_error"])
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.FileName)
	store := manifest.NewStore(path)

	g := domain.NewBuildGraph(store)
	fnDef := domain.NewFunctionBuildDefinition("python3.12", "src/app", map[string]string{"Key": "value"})
	fnDef.SourceChecksum = "cafe01"
	g.PutFunctionDefinition(fnDef, &domain.Function{Name: "one"})
	g.PutFunctionDefinition(
		domain.NewFunctionBuildDefinition("python3.12", "src/app", map[string]string{"Key": "value"}),
		&domain.Function{Name: "two"},
	)
	layerDef := domain.NewLayerBuildDefinition("deps", "layers/deps", "python3.12", []string{"python3.12"})
	layerDef.SourceChecksum = "cafe02"
	g.PutLayerDefinition(layerDef, &domain.Layer{Name: "deps"})

	require.NoError(t, store.Save(g.Manifest()))

	m, err := store.Load()
	require.NoError(t, err)

	require.Contains(t, m.Functions, fnDef.ID)
	fn := m.Functions[fnDef.ID]
	assert.Equal(t, "python3.12", fn.Runtime)
	assert.Equal(t, "src/app", fn.CodeURI)
	assert.Equal(t, "cafe01", fn.SourceChecksum)
	assert.Equal(t, []string{"one", "two"}, fn.Functions)
	assert.Equal(t, map[string]string{"Key": "value"}, fn.Metadata)

	require.Contains(t, m.Layers, layerDef.ID)
	layer := m.Layers[layerDef.ID]
	assert.Equal(t, "deps", layer.Name)
	assert.Equal(t, "layers/deps", layer.CodeURI)
	assert.Equal(t, "python3.12", layer.BuildMethod)
	assert.Equal(t, []string{"python3.12"}, layer.CompatibleRuntimes)
	assert.Equal(t, "cafe02", layer.SourceChecksum)
}

func TestStore_SaveWritesHeaderComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.FileName)
	store := manifest.NewStore(path)

	require.NoError(t, store.Save(domain.NewManifest()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Generated by slab build."),
		"expected the document to start with the generated-file marker")
}

func TestStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := manifest.NewStore(filepath.Join(dir, manifest.FileName))

	require.NoError(t, store.Save(domain.NewManifest()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, manifest.FileName, entries[0].Name())
}

func TestNewStoreFor_PlacesDocumentNextToBuildDir(t *testing.T) {
	root := t.TempDir()
	buildDir := filepath.Join(root, "build")
	store := manifest.NewStoreFor(buildDir)

	require.NoError(t, store.Save(domain.NewManifest()))

	_, err := os.Stat(filepath.Join(root, manifest.FileName))
	require.NoError(t, err)

	if _, err := os.Stat(filepath.Join(buildDir, manifest.FileName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no manifest inside the build dir, got %v", err)
	}
}
