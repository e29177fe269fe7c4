package imports

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envscan/internal/adapters/logger"
	"go.trai.ch/envscan/internal/core/ports"
)

// NodeID is the unique identifier for the import extractor Graft node.
const NodeID graft.ID = "adapter.imports"

func init() {
	graft.Register(graft.Node[ports.ImportExtractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ImportExtractor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(log), nil
		},
	})
}
