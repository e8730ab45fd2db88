package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/slab-sh/slab/internal/adapters/logger"
	"github.com/slab-sh/slab/internal/core/ports"
)

// ExecutorNodeID is the unique identifier for the executor Graft node.
// The Builder itself is constructed per run, once the build directory is
// known.
const ExecutorNodeID graft.ID = "adapter.shell.executor"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
