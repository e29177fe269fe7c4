package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envscan/internal/core/ports"
)

const (
	// LocatorNodeID is the unique identifier for the project locator Graft node.
	LocatorNodeID graft.ID = "adapter.locator"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ProjectLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLocator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
