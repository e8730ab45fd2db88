package ports

//go:generate go run go.uber.org/mock/mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks

// Copier recursively copies a directory tree, creating dst.
type Copier interface {
	CopyTree(src, dst string) error
}
