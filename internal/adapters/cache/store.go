// Package cache implements the on-disk artifact cache, keyed by build
// definition identifier.
package cache

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

// stagingPrefix marks in-progress entries. The dot keeps staging names
// disjoint from definition identifiers.
const stagingPrefix = ".staging-"

var _ ports.ArtifactCache = (*Store)(nil)

// Store keeps one cached artifact tree per definition identifier under a
// single root directory. Each entry is only ever touched by the task that
// owns its identifier, so no locking is needed across concurrent builds.
type Store struct {
	root   string
	copier ports.Copier
}

// NewStore creates the cache root if needed and returns a store over it.
func NewStore(root string, copier ports.Copier) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "root", root)
	}
	return &Store{root: root, copier: copier}, nil
}

func (s *Store) entry(id string) string {
	return filepath.Join(s.root, id)
}

// Has reports whether a cached entry exists for the identifier.
func (s *Store) Has(id string) bool {
	info, err := os.Stat(s.entry(id))
	return err == nil && info.IsDir()
}

// Replace swaps the entry for id with a copy of srcDir. The copy is staged
// next to the entry and renamed into place, so a crash mid-copy leaves a
// staging directory behind rather than a truncated entry.
func (s *Store) Replace(id, srcDir string) error {
	staging := filepath.Join(s.root, stagingPrefix+id)
	if err := os.RemoveAll(staging); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear staging directory"), "path", staging)
	}
	if err := s.copier.CopyTree(srcDir, staging); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stage cache entry"), "definition_id", id)
	}

	target := s.entry(id)
	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove stale cache entry"), "definition_id", id)
	}
	if err := os.Rename(staging, target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to activate cache entry"), "definition_id", id)
	}
	return nil
}

// CopyTo copies the cached entry for id into dst.
func (s *Store) CopyTo(id, dst string) error {
	if !s.Has(id) {
		return zerr.With(zerr.New("no cache entry for definition"), "definition_id", id)
	}
	return s.copier.CopyTree(s.entry(id), dst)
}

// Prune removes every entry whose identifier is not in live, plus any
// staging leftovers from interrupted runs. This bounds the cache to the
// current definition set.
func (s *Store) Prune(live map[string]struct{}) error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to list cache directory"), "root", s.root)
	}
	for _, entry := range entries {
		name := entry.Name()
		stale := strings.HasPrefix(name, stagingPrefix)
		if !stale {
			_, ok := live[name]
			stale = !ok
		}
		if !stale {
			continue
		}
		if err := os.RemoveAll(filepath.Join(s.root, name)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove cache entry"), "entry", name)
		}
	}
	return nil
}
