package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slab-sh/slab/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopier_CopyTree(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "main.py"), "print('hi')\n")
	writeFile(t, filepath.Join(src, "lib", "util.py"), "x = 1\n")
	require.NoError(t, os.Symlink("main.py", filepath.Join(src, "entry")))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, fs.NewCopier().CopyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "lib", "util.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", string(data))

	link, err := os.Readlink(filepath.Join(dst, "entry"))
	require.NoError(t, err)
	assert.Equal(t, "main.py", link)
}

func TestCopier_CopyTree_OverwritesExisting(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "main.py"), "new\n")

	dst := t.TempDir()
	writeFile(t, filepath.Join(dst, "main.py"), "old\n")
	writeFile(t, filepath.Join(dst, "stale.py"), "kept\n")

	require.NoError(t, fs.NewCopier().CopyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	// Copying merges into dst; unrelated files are left alone.
	_, err = os.Stat(filepath.Join(dst, "stale.py"))
	assert.NoError(t, err)
}

func TestCopier_CopyTree_PreservesMode(t *testing.T) {
	src := t.TempDir()
	script := filepath.Join(src, "run.sh")
	writeFile(t, script, "#!/bin/sh\n")
	require.NoError(t, os.Chmod(script, 0o755))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, fs.NewCopier().CopyTree(src, dst))

	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopier_CopyTree_SourceMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, file, "content")

	err := fs.NewCopier().CopyTree(file, filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)

	err = fs.NewCopier().CopyTree(filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}
