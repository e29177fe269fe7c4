package inventory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envscan/internal/adapters/conda"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envscan/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envscan/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envscan/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envscan/internal/core/ports"
)

// NodeID is the unique identifier for the inventory builder Graft node.
const NodeID graft.ID = "engine.inventory"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			conda.NodeID,
			fs.LocatorNodeID,
			fs.HasherNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			indexer, err := graft.Dep[ports.EnvironmentIndexer](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.ProjectLocator](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(indexer, locator, hasher, log, tracer), nil
		},
	})
}
