// Package poller re-checks watched directories at a fixed interval.
package poller

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/stale/internal/core/domain"
)

// Checker reports the files that changed since the previous check.
type Checker interface {
	CheckAll(ctx context.Context) ([]domain.ChangedFile, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context) ([]domain.ChangedFile, error)

// CheckAll calls f(ctx).
func (f CheckerFunc) CheckAll(ctx context.Context) ([]domain.ChangedFile, error) {
	return f(ctx)
}

// Poller drives a Checker from a ticker.
type Poller struct {
	clock    clockwork.Clock
	checker  Checker
	interval time.Duration
}

// New creates a new Poller. A non-positive interval falls back to domain.DefaultInterval.
func New(clock clockwork.Clock, checker Checker, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = domain.DefaultInterval
	}
	return &Poller{
		clock:    clock,
		checker:  checker,
		interval: interval,
	}
}

// Interval returns the time between two checks.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run checks once per interval until ctx is done and passes every non-empty batch of
// changes to onChange. Ticks that arrive while a check or onChange is running are dropped.
// When a check fails, the changes it did collect are delivered before Run returns the error.
// Run returns nil when ctx is cancelled.
func (p *Poller) Run(ctx context.Context, onChange func([]domain.ChangedFile)) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
		}

		changes, err := p.checker.CheckAll(ctx)
		if len(changes) > 0 && onChange != nil {
			onChange(changes)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}
