package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envscan/internal/core/ports"
)

// NodeID is the unique identifier for the builtin probe Graft node.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[ports.BuiltinProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuiltinProbe, error) {
			return NewProbe(), nil
		},
	})
}
