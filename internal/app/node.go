package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envscan/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/envscan/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/envscan/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/envscan/internal/core/ports"
	"go.trai.ch/envscan/internal/engine/inventory"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			inventory.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[*inventory.Builder](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.ReportWriter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, builder, writer, log), nil
		},
	})

	// Components Node
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

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
