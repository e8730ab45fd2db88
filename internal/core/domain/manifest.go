package domain

import "sort"

// Manifest is the persisted build graph document: two tables keyed by
// definition identifier, one for functions and one for layers.
type Manifest struct {
	Functions map[string]FunctionEntry
	Layers    map[string]LayerEntry

	functionIDs []string
	layerIDs    []string
}

// FunctionEntry is the persisted form of a function build definition.
// Units are stored by name only.
type FunctionEntry struct {
	CodeURI        string            `yaml:"codeuri"`
	Runtime        string            `yaml:"runtime"`
	SourceChecksum string            `yaml:"source_checksum"`
	Functions      []string          `yaml:"functions"`
	Metadata       map[string]string `yaml:"metadata,omitempty"`
}

func (e FunctionEntry) metadataOrEmpty() map[string]string {
	if e.Metadata == nil {
		return map[string]string{}
	}
	return e.Metadata
}

// LayerEntry is the persisted form of a layer build definition.
type LayerEntry struct {
	Name               string   `yaml:"layer_name"`
	CodeURI            string   `yaml:"codeuri"`
	BuildMethod        string   `yaml:"build_method"`
	CompatibleRuntimes []string `yaml:"compatible_runtimes"`
	SourceChecksum     string   `yaml:"source_checksum"`
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		Functions: make(map[string]FunctionEntry),
		Layers:    make(map[string]LayerEntry),
	}
}

func (m *Manifest) putFunction(def *FunctionBuildDefinition) {
	entry := FunctionEntry{
		CodeURI:        def.CodeURI,
		Runtime:        def.Runtime,
		SourceChecksum: def.SourceChecksum,
		Functions:      def.UnitNames(),
	}
	if len(def.Metadata) > 0 {
		entry.Metadata = def.Metadata
	}
	m.Functions[def.ID] = entry
	m.functionIDs = append(m.functionIDs, def.ID)
}

func (m *Manifest) putLayer(def *LayerBuildDefinition) {
	m.Layers[def.ID] = LayerEntry{
		Name:               def.Name,
		CodeURI:            def.CodeURI,
		BuildMethod:        def.BuildMethod,
		CompatibleRuntimes: def.CompatibleRuntimes,
		SourceChecksum:     def.SourceChecksum,
	}
	m.layerIDs = append(m.layerIDs, def.ID)
}

// functionOrder returns identifiers in insertion order when the manifest
// was produced in-process, or sorted order for a freshly parsed document.
func (m *Manifest) functionOrder() []string {
	if len(m.functionIDs) == len(m.Functions) {
		return m.functionIDs
	}
	return sortedKeys(m.Functions)
}

func (m *Manifest) layerOrder() []string {
	if len(m.layerIDs) == len(m.Layers) {
		return m.layerIDs
	}
	return sortedKeys(m.Layers)
}

func sortedKeys[V any](table map[string]V) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
