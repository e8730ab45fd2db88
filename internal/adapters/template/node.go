package template

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/slab-sh/slab/internal/adapters/logger"
	"github.com/slab-sh/slab/internal/core/ports"
)

// NodeID is the unique identifier for the template loader Graft node.
const NodeID graft.ID = "adapter.template.loader"

func init() {
	graft.Register(graft.Node[ports.TemplateLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TemplateLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
