package domain_test

import (
	"errors"
	"testing"

	"github.com/slab-sh/slab/internal/core/domain"
)

func TestFunctionBuildDefinition_DedupKey_EqualInputs(t *testing.T) {
	a := domain.NewFunctionBuildDefinition("python3.12", "src/app", map[string]string{"Key": "value"})
	b := domain.NewFunctionBuildDefinition("python3.12", "src/app", map[string]string{"Key": "value"})

	if a.DedupKey() != b.DedupKey() {
		t.Error("expected definitions with identical inputs to share a dedup key")
	}
	if a.DedupKey().Unique() {
		t.Error("expected a structural key for a non-makefile definition")
	}
}

func TestFunctionBuildDefinition_DedupKey_DifferentInputs(t *testing.T) {
	base := domain.NewFunctionBuildDefinition("python3.12", "src/app", nil)

	cases := []struct {
		name  string
		other *domain.FunctionBuildDefinition
	}{
		{"runtime differs", domain.NewFunctionBuildDefinition("nodejs20.x", "src/app", nil)},
		{"codeuri differs", domain.NewFunctionBuildDefinition("python3.12", "src/other", nil)},
		{"metadata differs", domain.NewFunctionBuildDefinition("python3.12", "src/app", map[string]string{"Key": "value"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if base.DedupKey() == tc.other.DedupKey() {
				t.Error("expected distinct dedup keys")
			}
		})
	}
}

func TestFunctionBuildDefinition_DedupKey_MetadataOrderIrrelevant(t *testing.T) {
	a := domain.NewFunctionBuildDefinition("go1.x", "src/app", map[string]string{"A": "1", "B": "2"})
	b := domain.NewFunctionBuildDefinition("go1.x", "src/app", map[string]string{"B": "2", "A": "1"})

	if a.DedupKey() != b.DedupKey() {
		t.Error("expected metadata iteration order not to affect the dedup key")
	}
}

func TestFunctionBuildDefinition_DedupKey_MakefileNeverEqual(t *testing.T) {
	metadata := map[string]string{domain.MetadataBuildMethodKey: domain.BuildMethodMakefile}
	a := domain.NewFunctionBuildDefinition("provided", "src/app", metadata)
	b := domain.NewFunctionBuildDefinition("provided", "src/app", metadata)

	if !a.DedupKey().Unique() {
		t.Error("expected a unique key for a makefile definition")
	}
	if a.DedupKey() == b.DedupKey() {
		t.Error("expected identical makefile declarations to stay distinct")
	}
	// A definition still matches itself, so restore followed by replay
	// finds it in the index.
	if a.DedupKey() != a.DedupKey() {
		t.Error("expected a makefile definition's key to be stable")
	}
}

func TestFunctionBuildDefinition_Representative(t *testing.T) {
	def := domain.NewFunctionBuildDefinition("python3.12", "src/app", nil)

	if _, err := def.Representative(); !errors.Is(err, domain.ErrEmptyDefinition) {
		t.Fatalf("expected ErrEmptyDefinition, got %v", err)
	}

	first := &domain.Function{Name: "first", Handler: "app.handler"}
	def.AddFunction(first)
	def.AddFunction(&domain.Function{Name: "second", Handler: "app.handler"})

	rep, err := def.Representative()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep != first {
		t.Errorf("expected the first attached unit, got %q", rep.Name)
	}

	names := def.UnitNames()
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Errorf("unexpected unit names: %v", names)
	}
}

func TestLayerBuildDefinition_DedupKey(t *testing.T) {
	a := domain.NewLayerBuildDefinition("deps", "layers/deps", "python3.12", []string{"python3.12"})
	b := domain.NewLayerBuildDefinition("deps", "layers/deps", "python3.12", []string{"python3.12"})
	c := domain.NewLayerBuildDefinition("deps", "layers/deps", "python3.13", []string{"python3.12"})

	if a.DedupKey() != b.DedupKey() {
		t.Error("expected layers with identical inputs to share a dedup key")
	}
	if a.DedupKey() == c.DedupKey() {
		t.Error("expected a differing build method to change the dedup key")
	}

	// The bound unit is not part of the identity.
	b.Layer = &domain.Layer{Name: "deps"}
	if a.DedupKey() != b.DedupKey() {
		t.Error("expected the bound layer unit not to affect the dedup key")
	}
}

func TestNewFunctionBuildDefinition_UniqueIDs(t *testing.T) {
	a := domain.NewFunctionBuildDefinition("python3.12", "src/app", nil)
	b := domain.NewFunctionBuildDefinition("python3.12", "src/app", nil)

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty identifiers, got %q and %q", a.ID, b.ID)
	}
}
