package clock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/stale/internal/core/ports"
)

const (
	// NodeID is the graft node ID for the system clock.
	NodeID graft.ID = "adapter.clock"
	// PortNodeID is the graft node ID for the clock exposed as ports.Clock.
	PortNodeID graft.ID = "adapter.clock.port"
	// TickerNodeID is the graft node ID for the clock used to drive polling.
	TickerNodeID graft.ID = "adapter.clock.ticker"
)

func init() {
	graft.Register(graft.Node[*System]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*System, error) {
			return NewSystem(), nil
		},
	})

	graft.Register(graft.Node[ports.Clock]{
		ID:        PortNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Clock, error) {
			sys, err := graft.Dep[*System](ctx)
			if err != nil {
				return nil, err
			}
			return sys, nil
		},
	})

	graft.Register(graft.Node[clockwork.Clock]{
		ID:        TickerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (clockwork.Clock, error) {
			sys, err := graft.Dep[*System](ctx)
			if err != nil {
				return nil, err
			}
			return sys.Clock(), nil
		},
	})
}
