package ports

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// ArtifactCache stores previously built artifacts keyed by definition
// identifier. Entries are whole directory trees; replacement is atomic so
// a crashed build can never leave a half-written entry that passes for a
// valid cache hit.
type ArtifactCache interface {
	// Has reports whether an entry exists for the identifier.
	Has(id string) bool

	// Replace swaps the entry for id with a copy of srcDir. The new
	// content is staged into a side directory and renamed into place.
	Replace(id, srcDir string) error

	// CopyTo copies the entry for id into dst.
	CopyTo(id, dst string) error

	// Prune removes every entry whose identifier is not in live, along
	// with any leftover staging directories.
	Prune(live map[string]struct{}) error
}
