package ports

import "github.com/slab-sh/slab/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=template.go -destination=mocks/mock_template.go -package=mocks

// TemplateLoader parses the application template into build units.
type TemplateLoader interface {
	Load(path string) (*domain.Template, error)
}
