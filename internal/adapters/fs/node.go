package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/slab-sh/slab/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node for the concrete walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the Graft node for the directory checksummer.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// CopierNodeID is the Graft node for the tree copier.
	CopierNodeID graft.ID = "adapter.fs.copier"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Checksummer]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Checksummer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Copier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Copier, error) {
			return NewCopier(), nil
		},
	})
}
