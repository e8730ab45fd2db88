package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/slab-sh/slab/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/adapters/template"  //nolint:depguard // Wired in app layer
	"github.com/slab-sh/slab/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			template.NodeID,
			fs.HasherNodeID,
			fs.CopierNodeID,
			shell.ExecutorNodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	templates, err := graft.Dep[ports.TemplateLoader](ctx)
	if err != nil {
		return nil, err
	}

	checksummer, err := graft.Dep[ports.Checksummer](ctx)
	if err != nil {
		return nil, err
	}

	copier, err := graft.Dep[ports.Copier](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[*shell.Executor](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, templates, checksummer, copier, executor, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
