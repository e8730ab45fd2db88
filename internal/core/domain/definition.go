// Package domain contains the core domain model for the build graph:
// build units, deduplicated build definitions, and the persisted manifest.
package domain

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// MetadataBuildMethodKey is the metadata key that selects a build method
// for a function.
const MetadataBuildMethodKey = "BuildMethod"

// BuildMethodMakefile marks a unit as built by a user-provided Makefile.
// Makefile builds are assumed to have side effects, so their definitions
// are never shared between units.
const BuildMethodMakefile = "makefile"

// DedupKey identifies a build definition for merge purposes. It is either
// structural (a digest of the merge-relevant fields) or unique (carrying
// the definition's own identifier, so it never matches another key).
// The unique variant models the rule that makefile-driven definitions are
// never equal to anything, including an identical declaration.
type DedupKey struct {
	unique     string
	structural uint64
}

// Unique reports whether the key can only match itself.
func (k DedupKey) Unique() bool {
	return k.unique != ""
}

func uniqueKey(id string) DedupKey {
	return DedupKey{unique: id}
}

func structuralKey(fields []string) DedupKey {
	d := xxhash.New()
	for _, f := range fields {
		_, _ = d.WriteString(f)
		_, _ = d.Write([]byte{0})
	}
	return DedupKey{structural: d.Sum64()}
}

// sortedMetadata flattens a metadata map into deterministic key=value pairs.
func sortedMetadata(metadata map[string]string) []string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+metadata[k])
	}
	return pairs
}

// FunctionBuildDefinition is the deduplicated record of one distinct
// function build input. Several functions that share runtime, source
// location, and metadata fan out of a single definition.
type FunctionBuildDefinition struct {
	ID             string
	Runtime        string
	CodeURI        string
	Metadata       map[string]string
	SourceChecksum string

	// Functions holds the build units attached to this definition.
	// Restored definitions start with an empty list; units are re-attached
	// by replaying the current template through the graph.
	Functions []*Function
}

// NewFunctionBuildDefinition creates a definition with a freshly generated
// identifier and no attached units.
func NewFunctionBuildDefinition(runtime, codeURI string, metadata map[string]string) *FunctionBuildDefinition {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return &FunctionBuildDefinition{
		ID:       uuid.NewString(),
		Runtime:  runtime,
		CodeURI:  codeURI,
		Metadata: metadata,
	}
}

// AddFunction attaches a build unit to the definition.
func (d *FunctionBuildDefinition) AddFunction(f *Function) {
	d.Functions = append(d.Functions, f)
}

// Representative returns the unit whose name and handler are handed to the
// build callback. All attached units share identical build inputs, so the
// first one stands in for the rest.
func (d *FunctionBuildDefinition) Representative() (*Function, error) {
	if len(d.Functions) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrEmptyDefinition, "cannot pick a representative unit"), "definition_id", d.ID)
	}
	return d.Functions[0], nil
}

// UnitNames returns the names of all attached units in attachment order.
func (d *FunctionBuildDefinition) UnitNames() []string {
	names := make([]string, len(d.Functions))
	for i, f := range d.Functions {
		names[i] = f.Name
	}
	return names
}

// UsesMakefile reports whether the definition's metadata declares a
// makefile build.
func (d *FunctionBuildDefinition) UsesMakefile() bool {
	return d.Metadata[MetadataBuildMethodKey] == BuildMethodMakefile
}

// DedupKey derives the merge key for the definition. Makefile definitions
// get a key that matches nothing else.
func (d *FunctionBuildDefinition) DedupKey() DedupKey {
	if d.UsesMakefile() {
		return uniqueKey(d.ID)
	}
	fields := []string{d.Runtime, d.CodeURI}
	fields = append(fields, sortedMetadata(d.Metadata)...)
	return structuralKey(fields)
}

// LayerBuildDefinition is the deduplicated record of one distinct layer
// build input. Exactly one layer unit is bound to a definition; the
// binding always reflects the latest template declaration.
type LayerBuildDefinition struct {
	ID                 string
	Name               string
	CodeURI            string
	BuildMethod        string
	CompatibleRuntimes []string
	SourceChecksum     string

	// Layer is attached after a merge or insert; it is not part of the
	// definition's identity.
	Layer *Layer
}

// NewLayerBuildDefinition creates a layer definition with a freshly
// generated identifier and no bound layer unit.
func NewLayerBuildDefinition(name, codeURI, buildMethod string, compatibleRuntimes []string) *LayerBuildDefinition {
	return &LayerBuildDefinition{
		ID:                 uuid.NewString(),
		Name:               name,
		CodeURI:            codeURI,
		BuildMethod:        buildMethod,
		CompatibleRuntimes: compatibleRuntimes,
	}
}

// DedupKey derives the merge key for the definition. The bound layer unit
// is deliberately excluded.
func (d *LayerBuildDefinition) DedupKey() DedupKey {
	fields := []string{d.Name, d.CodeURI, d.BuildMethod}
	fields = append(fields, d.CompatibleRuntimes...)
	return structuralKey(fields)
}
