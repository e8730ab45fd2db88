package app

import (
	"github.com/slab-sh/slab/internal/core/ports"
)

// Components contains the initialized application components. It gives
// the CLI layer controlled access to what it needs without exposing the
// dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
