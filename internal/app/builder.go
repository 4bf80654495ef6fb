package app

import (
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    *logger.Logger
	Telemetry ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log *logger.Logger, telemetry ports.Telemetry) *Components {
	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}
}
