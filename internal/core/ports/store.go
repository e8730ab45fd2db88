package ports

import "github.com/slab-sh/slab/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// GraphStore reads and writes the persisted build graph document. Load
// returns an empty manifest when the document does not exist and
// domain.ErrManifestMalformed when it exists but cannot be parsed.
type GraphStore interface {
	Load() (*domain.Manifest, error)
	Save(m *domain.Manifest) error
}
