package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/app"
	_ "go.trai.ch/stale/internal/wiring"
)

// TestGraftDependencies resolves the full graph the CLI starts from.
func TestGraftDependencies(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)

	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
	assert.NoError(t, components.Telemetry.Close())
}
