package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/tui"
	"go.trai.ch/stale/internal/core/domain"
)

func newRenderer(model *tui.Model, opts ...tea.ProgramOption) *tui.Renderer {
	return tui.NewRenderer(model, append([]tea.ProgramOption{
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	}, opts...)...)
}

func TestRenderer_Lifecycle(t *testing.T) {
	model := tui.NewModel()
	renderer := newRenderer(&model)

	require.NoError(t, renderer.Start(context.Background()))
	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}

func TestRenderer_ForwardsEvents(t *testing.T) {
	model := tui.NewModel()
	renderer := newRenderer(&model)

	require.NoError(t, renderer.Start(context.Background()))

	renderer.OnWatchStart([]string{"/a"}, time.Second)
	renderer.OnChanges([]domain.ChangedFile{change("/a", "A.jl")})

	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())

	require.Len(t, model.Dirs, 1)
	assert.Equal(t, tui.StatusChanged, model.Dirs[0].Status)
	assert.Equal(t, 1, model.Batches)
	assert.Len(t, model.Lines, 1)
}

func TestRenderer_ContextCancelIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	model := tui.NewModel()
	renderer := newRenderer(&model, tea.WithContext(ctx))

	require.NoError(t, renderer.Start(ctx))
	cancel()

	require.NoError(t, renderer.Wait())

	// Stopping a finished dashboard does not block.
	require.NoError(t, renderer.Stop())
}
