// Package manifest persists the build graph document as YAML.
package manifest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the graph document's name. It lives next to the build
// output directory.
const FileName = "build-graph.yaml"

const header = "# Generated by slab build. Changes will be overwritten on the next build.\n"

var (
	_ ports.GraphStore = (*Store)(nil)
	_ domain.Persister = (*Store)(nil)
)

// Store reads and writes the graph document at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store over the document at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// NewStoreFor places the document next to the given build directory.
func NewStoreFor(buildDir string) *Store {
	return NewStore(filepath.Join(filepath.Dir(filepath.Clean(buildDir)), FileName))
}

// Load parses the persisted document. A missing file yields an empty
// manifest; an unparsable file is a hard error.
func (s *Store) Load() (*domain.Manifest, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // Path is cleaned and derived from the build dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewManifest(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build graph manifest"), "path", s.path)
	}

	m := domain.NewManifest()
	if err := unmarshalManifest(data, m); err != nil {
		malformed := zerr.Wrap(domain.ErrManifestMalformed, "failed to parse build graph manifest")
		return nil, zerr.With(zerr.With(malformed, "path", s.path), "parse_error", err.Error())
	}
	return m, nil
}

// Save serializes the manifest and writes it atomically, prefixed with a
// machine-generated marker comment.
func (s *Store) Save(m *domain.Manifest) error {
	body, err := marshalManifest(m)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize build graph manifest")
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(body)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create manifest directory"), "dir", dir)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil { //nolint:gosec // Manifest is not sensitive
		return zerr.With(zerr.Wrap(err, "failed to write build graph manifest"), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace build graph manifest"), "path", s.path)
	}
	return nil
}
