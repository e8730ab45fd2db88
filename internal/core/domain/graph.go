package domain

import "go.trai.ch/zerr"

// Persister writes the serialized build graph document. It is satisfied by
// the manifest adapter; the graph itself never touches the filesystem.
type Persister interface {
	Save(m *Manifest) error
}

// BuildGraph owns the set of function and layer build definitions for one
// build directory context. Incoming build requests are deduplicated
// against the set via an index keyed by DedupKey, and the set is persisted
// across runs through the Persister.
type BuildGraph struct {
	persister Persister

	functions     []*FunctionBuildDefinition
	layers        []*LayerBuildDefinition
	functionIndex map[DedupKey]*FunctionBuildDefinition
	layerIndex    map[DedupKey]*LayerBuildDefinition
}

// NewBuildGraph creates an empty graph backed by the given persister.
func NewBuildGraph(p Persister) *BuildGraph {
	return &BuildGraph{
		persister:     p,
		functionIndex: make(map[DedupKey]*FunctionBuildDefinition),
		layerIndex:    make(map[DedupKey]*LayerBuildDefinition),
	}
}

// Restore seeds the graph from a previously persisted manifest. Restored
// definitions keep their persisted identifiers and checksums and start
// with empty unit lists; units are re-attached by replaying the current
// template declarations through the Put methods.
func (g *BuildGraph) Restore(m *Manifest) {
	for _, id := range m.functionOrder() {
		entry := m.Functions[id]
		def := &FunctionBuildDefinition{
			ID:             id,
			Runtime:        entry.Runtime,
			CodeURI:        entry.CodeURI,
			Metadata:       entry.metadataOrEmpty(),
			SourceChecksum: entry.SourceChecksum,
		}
		g.functions = append(g.functions, def)
		g.functionIndex[def.DedupKey()] = def
	}
	for _, id := range m.layerOrder() {
		entry := m.Layers[id]
		def := &LayerBuildDefinition{
			ID:                 id,
			Name:               entry.Name,
			CodeURI:            entry.CodeURI,
			BuildMethod:        entry.BuildMethod,
			CompatibleRuntimes: entry.CompatibleRuntimes,
			SourceChecksum:     entry.SourceChecksum,
		}
		g.layers = append(g.layers, def)
		g.layerIndex[def.DedupKey()] = def
	}
}

// PutFunctionDefinition merges the definition into the graph. If an equal
// definition already exists the unit is attached to it and def is
// discarded; otherwise def is inserted with the unit attached. The
// surviving definition is returned.
func (g *BuildGraph) PutFunctionDefinition(def *FunctionBuildDefinition, fn *Function) *FunctionBuildDefinition {
	key := def.DedupKey()
	if existing, ok := g.functionIndex[key]; ok && !key.Unique() {
		existing.AddFunction(fn)
		return existing
	}
	def.AddFunction(fn)
	g.functions = append(g.functions, def)
	g.functionIndex[key] = def
	return def
}

// PutLayerDefinition merges the definition into the graph. On a merge the
// existing definition adopts the new layer unit, so the binding always
// reflects the latest declaration.
func (g *BuildGraph) PutLayerDefinition(def *LayerBuildDefinition, layer *Layer) *LayerBuildDefinition {
	key := def.DedupKey()
	if existing, ok := g.layerIndex[key]; ok {
		existing.Layer = layer
		return existing
	}
	def.Layer = layer
	g.layers = append(g.layers, def)
	g.layerIndex[key] = def
	return def
}

// FunctionDefinitions returns the function definitions in insertion order.
func (g *BuildGraph) FunctionDefinitions() []*FunctionBuildDefinition {
	defs := make([]*FunctionBuildDefinition, len(g.functions))
	copy(defs, g.functions)
	return defs
}

// LayerDefinitions returns the layer definitions in insertion order.
func (g *BuildGraph) LayerDefinitions() []*LayerBuildDefinition {
	defs := make([]*LayerBuildDefinition, len(g.layers))
	copy(defs, g.layers)
	return defs
}

// LiveIDs returns the identifiers of every definition currently in the
// graph. The cached strategy bounds the artifact cache to this set.
func (g *BuildGraph) LiveIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(g.functions)+len(g.layers))
	for _, def := range g.functions {
		ids[def.ID] = struct{}{}
	}
	for _, def := range g.layers {
		ids[def.ID] = struct{}{}
	}
	return ids
}

// PruneAndPersist drops definitions that ended up with no attached units
// after the template replay, then rewrites the persisted document if
// persist is set.
func (g *BuildGraph) PruneAndPersist(persist bool) error {
	kept := g.functions[:0]
	for _, def := range g.functions {
		if len(def.Functions) > 0 {
			kept = append(kept, def)
			continue
		}
		delete(g.functionIndex, def.DedupKey())
	}
	g.functions = kept

	keptLayers := g.layers[:0]
	for _, def := range g.layers {
		if def.Layer != nil {
			keptLayers = append(keptLayers, def)
			continue
		}
		delete(g.layerIndex, def.DedupKey())
	}
	g.layers = keptLayers

	if !persist {
		return nil
	}
	if err := g.persister.Save(g.Manifest()); err != nil {
		return zerr.Wrap(err, "failed to persist build graph")
	}
	return nil
}

// Manifest serializes the current definition set. Units are recorded by
// name only; full unit objects are re-resolved from the template on the
// next run.
func (g *BuildGraph) Manifest() *Manifest {
	m := NewManifest()
	for _, def := range g.functions {
		m.putFunction(def)
	}
	for _, def := range g.layers {
		m.putLayer(def)
	}
	return m
}
