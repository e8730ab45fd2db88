package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slab-sh/slab/internal/adapters/cache"
	"github.com/slab-sh/slab/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*cache.Store, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "cache")
	store, err := cache.NewStore(root, fs.NewCopier())
	require.NoError(t, err)
	return store, root
}

func artifactDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "artifact.txt"), []byte(content), 0o644))
	return dir
}

func TestStore_ReplaceAndCopyTo(t *testing.T) {
	store, _ := newStore(t)

	assert.False(t, store.Has("def-1"))
	require.NoError(t, store.Replace("def-1", artifactDir(t, "v1")))
	assert.True(t, store.Has("def-1"))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, store.CopyTo("def-1", dst))
	data, err := os.ReadFile(filepath.Join(dst, "artifact.txt"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

func TestStore_ReplaceSwapsContent(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Replace("def-1", artifactDir(t, "v1")))

	// The replacement must fully displace the old entry, not merge into it.
	next := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(next, "other.txt"), []byte("v2"), 0o644))
	require.NoError(t, store.Replace("def-1", next))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, store.CopyTo("def-1", dst))
	_, err := os.Stat(filepath.Join(dst, "artifact.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dst, "other.txt"))
	assert.NoError(t, err)
}

func TestStore_CopyToMissingEntry(t *testing.T) {
	store, _ := newStore(t)

	err := store.CopyTo("missing", filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
}

func TestStore_Prune(t *testing.T) {
	store, root := newStore(t)

	require.NoError(t, store.Replace("live", artifactDir(t, "v1")))
	require.NoError(t, store.Replace("stale", artifactDir(t, "v1")))

	// Leftover staging directory from an interrupted run.
	staging := filepath.Join(root, ".staging-crashed")
	require.NoError(t, os.MkdirAll(staging, 0o755))

	require.NoError(t, store.Prune(map[string]struct{}{"live": {}}))

	assert.True(t, store.Has("live"))
	assert.False(t, store.Has("stale"))
	_, err := os.Stat(staging)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_PruneEmptyLiveSetClearsCache(t *testing.T) {
	store, root := newStore(t)
	require.NoError(t, store.Replace("def-1", artifactDir(t, "v1")))

	require.NoError(t, store.Prune(map[string]struct{}{}))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
