// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/slab-sh/slab/internal/adapters/fs"
	_ "github.com/slab-sh/slab/internal/adapters/logger"
	_ "github.com/slab-sh/slab/internal/adapters/shell"
	_ "github.com/slab-sh/slab/internal/adapters/telemetry"
	_ "github.com/slab-sh/slab/internal/adapters/template"
	// Register app nodes.
	_ "github.com/slab-sh/slab/internal/app"
)
