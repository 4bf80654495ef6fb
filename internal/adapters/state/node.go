package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the graft node ID for the state store opener.
const NodeID graft.ID = "adapter.state_opener"

func init() {
	graft.Register(graft.Node[ports.StateOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateOpener, error) {
			return NewOpener(), nil
		},
	})
}
