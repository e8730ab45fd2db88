package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCommands(t *testing.T) {
	cli := New(nil)

	var names []string
	for _, cmd := range cli.rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "build")
	assert.Contains(t, names, "version")
}

func TestBuildCommand_Flags(t *testing.T) {
	cli := New(nil)

	var found bool
	for _, cmd := range cli.rootCmd.Commands() {
		if cmd.Name() != "build" {
			continue
		}
		found = true
		for _, flag := range []string{"template", "base-dir", "build-dir", "cache-dir", "cached", "parallel", "workers", "progress"} {
			assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
		}
		assert.Equal(t, "slab.yaml", cmd.Flags().Lookup("template").DefValue)
	}
	require.True(t, found, "build command not registered")
}
