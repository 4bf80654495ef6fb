package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/telemetry/progrock"
	"go.trai.ch/stale/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	ctx := t.Context()

	gotCtx, changed := recorder.Record(ctx, "check /pkg/src")
	assert.Equal(t, ctx, gotCtx)
	changed.Log(domain.LogLevelInfo, "A.jl changed")
	changed.Log(domain.LogLevelWarn, "B.jl relocated")
	changed.Complete(nil)

	_, unchanged := recorder.Record(ctx, "check /pkg/test")
	unchanged.Cached()

	_, failed := recorder.Record(ctx, "check /pkg/deps")
	failed.Complete(errors.New("permission denied"))

	require.NoError(t, recorder.Close())
}
