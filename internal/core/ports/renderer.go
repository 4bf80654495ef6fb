package ports

import (
	"context"
	"time"

	"go.trai.ch/stale/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

// Renderer presents the progress of a watch loop.
// The same loop drives either an interactive dashboard or line-oriented output.
type Renderer interface {
	// Start begins the renderer's lifecycle. Asynchronous renderers may launch goroutines.
	Start(ctx context.Context) error
	// Stop signals the renderer to shut down.
	Stop() error
	// Wait blocks until the renderer has terminated.
	Wait() error
	// OnWatchStart is called once with the watched directories and the polling interval.
	OnWatchStart(dirs []string, interval time.Duration)
	// OnChanges is called with every non-empty batch of changed files.
	OnChanges(changes []domain.ChangedFile)
}
