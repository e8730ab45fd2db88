package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyDefinition is returned when a build is attempted for a
	// definition that has no build units attached. It indicates a prior
	// merge or prune inconsistency.
	ErrEmptyDefinition = zerr.New("build definition has no build units to build")

	// ErrMissingBuildMethod is returned when a layer is declared without a
	// build method.
	ErrMissingBuildMethod = zerr.New("layer cannot be built without a build method")

	// ErrManifestMalformed is returned when the persisted build graph
	// document exists but cannot be parsed. A missing document is not an
	// error; a corrupt one is.
	ErrManifestMalformed = zerr.New("build graph manifest is malformed")

	// ErrUnknownResource is returned when a build targets a resource name
	// that is not declared in the template.
	ErrUnknownResource = zerr.New("resource is not declared in the template")

	// ErrNoResources is returned when the template declares nothing to build.
	ErrNoResources = zerr.New("template declares no buildable resources")
)
