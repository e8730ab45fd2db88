package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

const checksumMemoSize = 256

var _ ports.Checksummer = (*Hasher)(nil)

// Hasher computes content checksums over directory trees. Results are
// memoized by absolute path: functions and layers frequently share a
// source directory, and source trees do not change within a single build
// run. Callers start each run with Reset so changes between runs are
// observed.
type Hasher struct {
	walker *Walker
	memo   *lru.Cache[string, string]
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	memo, _ := lru.New[string, string](checksumMemoSize)
	return &Hasher{walker: walker, memo: memo}
}

// Reset discards all memoized checksums.
func (h *Hasher) Reset() {
	h.memo.Purge()
}

// DirChecksum computes a stable digest of the directory tree rooted at
// dir. The digest covers each file's path relative to dir and its
// content, in sorted path order; timestamps and permissions are excluded.
func (h *Hasher) DirChecksum(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}
	if sum, ok := h.memo.Get(abs); ok {
		return sum, nil
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat source directory"), "dir", abs)
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.New("source path is not a directory"), "dir", abs)
	}

	files, err := h.walker.Files(abs)
	if err != nil {
		return "", err
	}
	sort.Strings(files)

	digest := xxhash.New()
	for _, file := range files {
		rel, err := filepath.Rel(abs, file)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", file)
		}
		_, _ = digest.WriteString(filepath.ToSlash(rel))
		_, _ = digest.Write([]byte{0})

		contentSum, err := h.fileChecksum(file)
		if err != nil {
			return "", err
		}
		_, _ = digest.WriteString(contentSum)
		_, _ = digest.Write([]byte{0})
	}

	sum := fmt.Sprintf("%016x", digest.Sum64())
	h.memo.Add(abs, sum)
	return sum, nil
}

func (h *Hasher) fileChecksum(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking a caller-owned tree
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
