package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		template     string
		args         func(tmpDir, templatePath string) []string
		expectedExit int
	}{
		{
			name: "build succeeds with a valid template",
			template: `
functions:
  api:
    handler: app.handler
    runtime: python3.12
    codeuri: src/api
`,
			args: func(tmpDir, templatePath string) []string {
				return []string{"slab", "build", "-t", templatePath, "-b", filepath.Join(tmpDir, "out", "build")}
			},
			expectedExit: 0,
		},
		{
			name: "unknown resource fails",
			template: `
functions:
  api:
    handler: app.handler
    runtime: python3.12
    codeuri: src/api
`,
			args: func(tmpDir, templatePath string) []string {
				return []string{"slab", "build", "-t", templatePath, "-b", filepath.Join(tmpDir, "out", "build"), "ghost"}
			},
			expectedExit: 1,
		},
		{
			name: "build succeeds with progress recording",
			template: `
functions:
  api:
    handler: app.handler
    runtime: python3.12
    codeuri: src/api
`,
			args: func(tmpDir, templatePath string) []string {
				return []string{"slab", "build", "-t", templatePath, "-b", filepath.Join(tmpDir, "out", "build"), "--progress"}
			},
			expectedExit: 0,
		},
		{
			name:     "empty template fails",
			template: "version: \"1\"\n",
			args: func(tmpDir, templatePath string) []string {
				return []string{"slab", "build", "-t", templatePath, "-b", filepath.Join(tmpDir, "out", "build")}
			},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src", "api"), 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "api", "app.py"), []byte("print('hi')\n"), 0o644))

			templatePath := filepath.Join(tmpDir, "slab.yaml")
			require.NoError(t, os.WriteFile(templatePath, []byte(tt.template), 0o600))

			os.Args = tt.args(tmpDir, templatePath)
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	os.Args = []string{"slab", "version"}
	assert.Equal(t, 0, run())
}
