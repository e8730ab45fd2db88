package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Copier = (*Copier)(nil)

// Copier copies directory trees recursively.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// CopyTree copies the tree rooted at src into dst, creating dst and any
// missing parents. Existing files in dst are overwritten; symlinks are
// recreated rather than followed.
func (c *Copier) CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "src", src)
	}
	if !info.IsDir() {
		return zerr.With(zerr.New("copy source is not a directory"), "src", src)
	}

	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk copy source"), "path", path)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, 0o755); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
			}
			return nil
		case d.Type()&iofs.ModeSymlink != 0:
			return c.copyLink(path, target)
		default:
			return c.copyFile(path, target)
		}
	})
}

func (c *Copier) copyLink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read symlink"), "path", src)
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to replace symlink"), "path", dst)
	}
	if err := os.Symlink(link, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create symlink"), "path", dst)
	}
	return nil
}

func (c *Copier) copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from walking a caller-owned tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open copy source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Destination is caller-owned
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create copy destination"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to flush copy destination"), "path", dst)
	}
	return nil
}
