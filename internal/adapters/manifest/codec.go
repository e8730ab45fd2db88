package manifest

import (
	"github.com/slab-sh/slab/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// document mirrors domain.Manifest for YAML round-tripping. The domain
// type carries unexported bookkeeping, so the wire shape is kept here.
type document struct {
	Functions map[string]domain.FunctionEntry `yaml:"function_build_definitions"`
	Layers    map[string]domain.LayerEntry    `yaml:"layer_build_definitions"`
}

func marshalManifest(m *domain.Manifest) ([]byte, error) {
	return yaml.Marshal(document{
		Functions: m.Functions,
		Layers:    m.Layers,
	})
}

func unmarshalManifest(data []byte, m *domain.Manifest) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Functions != nil {
		m.Functions = doc.Functions
	}
	if doc.Layers != nil {
		m.Layers = doc.Layers
	}
	return nil
}
