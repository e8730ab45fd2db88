// Package fs provides filesystem adapters: directory walking, content
// hashing, and recursive tree copies.
package fs

import (
	iofs "io/fs"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Walker lists the files beneath a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Files returns every regular file beneath root, sorted lexicographically
// by path. Version-control bookkeeping directories are skipped.
func (w *Walker) Files(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == ".git" || name == ".jj" {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root)
	}
	return files, nil
}
