// Package clock reads the wall clock that the host file system stamps modification times with.
package clock

import (
	"github.com/jonboulle/clockwork"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.Clock = (*System)(nil)

// System implements ports.Clock on top of a clockwork.Clock.
type System struct {
	clock clockwork.Clock
}

// NewSystem returns a System backed by the real wall clock.
func NewSystem() *System {
	return New(clockwork.NewRealClock())
}

// New returns a System backed by c.
func New(c clockwork.Clock) *System {
	return &System{clock: c}
}

// Now returns the current wall-clock time as seconds since the Unix epoch.
// The monotonic reading is discarded; modification times carry none.
func (s *System) Now() domain.Timestamp {
	return domain.TimestampOf(s.clock.Now().Round(0))
}

// Clock returns the underlying clock, for components that need tickers on the same time source.
func (s *System) Clock() clockwork.Clock {
	return s.clock
}
