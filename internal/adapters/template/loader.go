// Package template loads the application template (slab.yaml) into build
// units.
package template

import (
	"os"
	"sort"

	"github.com/slab-sh/slab/internal/core/domain"
	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the default template file name.
const FileName = "slab.yaml"

var _ ports.TemplateLoader = (*Loader)(nil)

// Loader reads a YAML template into function and layer build units.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

type templateDoc struct {
	Version   string                 `yaml:"version"`
	Functions map[string]functionDTO `yaml:"functions"`
	Layers    map[string]layerDTO    `yaml:"layers"`
}

type functionDTO struct {
	Handler  string            `yaml:"handler"`
	Runtime  string            `yaml:"runtime"`
	CodeURI  string            `yaml:"codeuri"`
	Metadata map[string]string `yaml:"metadata"`
}

type layerDTO struct {
	CodeURI            string   `yaml:"codeuri"`
	BuildMethod        string   `yaml:"build_method"`
	CompatibleRuntimes []string `yaml:"compatible_runtimes"`
}

// Load parses the template at path. Declarations are returned in name
// order so graph population is deterministic across runs.
func (l *Loader) Load(path string) (*domain.Template, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read template"), "path", path)
	}

	var doc templateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse template"), "path", path)
	}

	t := &domain.Template{}

	for _, name := range sortedNames(doc.Functions) {
		dto := doc.Functions[name]
		if dto.Runtime == "" {
			return nil, zerr.With(zerr.New("function is missing a runtime"), "function", name)
		}
		if dto.CodeURI == "" {
			return nil, zerr.With(zerr.New("function is missing a codeuri"), "function", name)
		}
		metadata := dto.Metadata
		if metadata == nil {
			metadata = map[string]string{}
		}
		t.Functions = append(t.Functions, &domain.Function{
			Name:     name,
			Handler:  dto.Handler,
			Runtime:  dto.Runtime,
			CodeURI:  dto.CodeURI,
			Metadata: metadata,
		})
	}

	for _, name := range sortedNames(doc.Layers) {
		dto := doc.Layers[name]
		if dto.CodeURI == "" {
			return nil, zerr.With(zerr.New("layer is missing a codeuri"), "layer", name)
		}
		t.Layers = append(t.Layers, &domain.Layer{
			Name:               name,
			CodeURI:            dto.CodeURI,
			BuildMethod:        dto.BuildMethod,
			CompatibleRuntimes: dto.CompatibleRuntimes,
		})
	}

	if len(t.Functions) == 0 && len(t.Layers) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoResources, "cannot build from template"), "path", path)
	}
	return t, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
