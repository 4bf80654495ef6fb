// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stale/internal/adapters/clock"
	_ "go.trai.ch/stale/internal/adapters/config"
	_ "go.trai.ch/stale/internal/adapters/fs"
	_ "go.trai.ch/stale/internal/adapters/logger"
	_ "go.trai.ch/stale/internal/adapters/state"
	_ "go.trai.ch/stale/internal/adapters/telemetry"
	_ "go.trai.ch/stale/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/stale/internal/app"
)
