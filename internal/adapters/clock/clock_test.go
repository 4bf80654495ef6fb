package clock_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/clock"
	"go.trai.ch/stale/internal/core/domain"
)

func TestSystem_NowFollowsClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 250_000_000, time.UTC)
	fake := clockwork.NewFakeClockAt(start)
	sys := clock.New(fake)

	assert.InDelta(t, float64(start.Unix())+0.25, sys.Now().Seconds(), 1e-6)

	fake.Advance(1500 * time.Millisecond)
	assert.InDelta(t, float64(start.Unix())+1.75, sys.Now().Seconds(), 1e-6)
	assert.Equal(t, clockwork.Clock(fake), sys.Clock())
}

func TestSystem_ComparableWithModTimes(t *testing.T) {
	sys := clock.NewSystem()

	before := sys.Now()
	path := filepath.Join(t.TempDir(), "A.jl")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	info, err := os.Stat(path)
	require.NoError(t, err)
	mtime := domain.TimestampOf(info.ModTime())

	// Whole-second file systems may stamp up to one second before the read.
	assert.True(t, domain.PolicyCoarse.IsNewer(mtime, before))
	assert.InDelta(t, before.Seconds(), mtime.Seconds(), 5)
}
