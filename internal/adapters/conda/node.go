package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envscan/internal/adapters/imports"
	"go.trai.ch/envscan/internal/adapters/logger"
	"go.trai.ch/envscan/internal/adapters/shell"
	"go.trai.ch/envscan/internal/core/ports"
)

// NodeID is the unique identifier for the environment indexer Graft node.
const NodeID graft.ID = "adapter.conda"

func init() {
	graft.Register(graft.Node[ports.EnvironmentIndexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{imports.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentIndexer, error) {
			extractor, err := graft.Dep[ports.ImportExtractor](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.BuiltinProbe](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndexer(extractor, probe, log), nil
		},
	})
}
