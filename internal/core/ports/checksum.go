// Package ports defines the core interfaces for the application.
package ports

//go:generate go run go.uber.org/mock/mockgen -source=checksum.go -destination=mocks/mock_checksum.go -package=mocks

// Checksummer computes a stable content hash over a directory tree. The
// hash is the cache-validity key: it covers file paths and contents, not
// timestamps, so restored or freshly checked-out trees hash identically.
// Implementations may memoize within a run; Reset discards memoized
// results so the next run observes on-disk changes.
type Checksummer interface {
	DirChecksum(dir string) (string, error)
	Reset()
}
