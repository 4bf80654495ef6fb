package poller_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/engine/poller"
)

func TestNew_DefaultInterval(t *testing.T) {
	p := poller.New(clockwork.NewRealClock(), poller.CheckerFunc(nil), 0)
	assert.Equal(t, domain.DefaultInterval, p.Interval())

	p = poller.New(clockwork.NewRealClock(), poller.CheckerFunc(nil), 250*time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, p.Interval())
}

func TestPoller_Run_ChecksEveryInterval(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var checks atomic.Int32
		checker := poller.CheckerFunc(func(context.Context) ([]domain.ChangedFile, error) {
			checks.Add(1)
			return nil, nil
		})

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		p := poller.New(clockwork.NewRealClock(), checker, time.Second)
		go func() {
			done <- p.Run(ctx, func([]domain.ChangedFile) {
				t.Error("empty batches must not be delivered")
			})
		}()

		time.Sleep(3500 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(3), checks.Load())

		cancel()
		require.NoError(t, <-done)
	})
}

func TestPoller_Run_DeliversChanges(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	change := domain.ChangedFile{Dir: "/pkg/src", Name: "A.jl", Path: "/pkg/src/A.jl"}
	checker := poller.CheckerFunc(func(context.Context) ([]domain.ChangedFile, error) {
		return []domain.ChangedFile{change}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []domain.ChangedFile, 1)
	done := make(chan error, 1)
	p := poller.New(fake, checker, time.Second)
	go func() {
		done <- p.Run(ctx, func(changes []domain.ChangedFile) {
			batches <- changes
		})
	}()

	fake.BlockUntil(1)
	fake.Advance(time.Second)

	select {
	case got := <-batches:
		assert.Equal(t, []domain.ChangedFile{change}, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestPoller_Run_ReturnsCheckError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		errDenied := errors.New("permission denied")
		checker := poller.CheckerFunc(func(context.Context) ([]domain.ChangedFile, error) {
			return nil, errDenied
		})

		p := poller.New(clockwork.NewRealClock(), checker, time.Second)
		err := p.Run(t.Context(), nil)
		require.ErrorIs(t, err, errDenied)
	})
}

func TestPoller_Run_CancelDuringCheck(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		checker := poller.CheckerFunc(func(ctx context.Context) ([]domain.ChangedFile, error) {
			cancel()
			return nil, ctx.Err()
		})

		p := poller.New(clockwork.NewRealClock(), checker, time.Second)
		require.NoError(t, p.Run(ctx, nil))
	})
}

func TestPoller_Run_DeliversPartialChangesBeforeError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		errDenied := errors.New("permission denied")
		change := domain.ChangedFile{Dir: "/a", Name: "x.jl", Path: "/a/x.jl"}
		checker := poller.CheckerFunc(func(context.Context) ([]domain.ChangedFile, error) {
			return []domain.ChangedFile{change}, errDenied
		})

		var got []domain.ChangedFile
		p := poller.New(clockwork.NewRealClock(), checker, time.Second)
		err := p.Run(t.Context(), func(changes []domain.ChangedFile) {
			got = changes
		})
		require.ErrorIs(t, err, errDenied)
		assert.Equal(t, []domain.ChangedFile{change}, got)
	})
}
