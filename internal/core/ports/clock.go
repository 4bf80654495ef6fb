package ports

import "go.trai.ch/stale/internal/core/domain"

// Clock reads the current time in the clock domain file systems use for modification times.
//
//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	// Now returns the current wall-clock time.
	Now() domain.Timestamp
}
