package config

import "go.trai.ch/stale/internal/core/ports"

// NewLoaderForOS creates a Loader that detects the staleness policy as if running on goos.
func NewLoaderForOS(logger ports.Logger, goos string) *Loader {
	return &Loader{logger: logger, goos: goos}
}
