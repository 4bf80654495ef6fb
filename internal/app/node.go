package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/stale/internal/adapters/clock"     //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/core/ports"
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
			state.NodeID,
			fs.ResolverFactoryNodeID,
			fs.ScannerNodeID,
			fs.FileSystemNodeID,
			fs.HasherNodeID,
			clock.PortNodeID,
			clock.TickerNodeID,
			telemetry.NodeID,
			logger.PortNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, tel), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.StateOpener](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.PackageScanner](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	clk, err := graft.Dep[ports.Clock](ctx)
	if err != nil {
		return nil, err
	}

	ticker, err := graft.Dep[clockwork.Clock](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, resolvers, scanner, fsys, hasher, clk, tel, log).WithTicker(ticker), nil
}
