package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the dashboard Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new dashboard renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the dashboard in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the dashboard to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the dashboard has terminated.
// A dashboard stopped through its context is not an error.
func (r *Renderer) Wait() error {
	err := <-r.errCh
	if errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrProgramPanic) {
		return nil
	}
	return err
}

// OnWatchStart forwards the watched directories to the dashboard.
func (r *Renderer) OnWatchStart(dirs []string, interval time.Duration) {
	r.program.Send(MsgWatchStart{
		Dirs:     dirs,
		Interval: interval,
	})
}

// OnChanges forwards a batch of changed files to the dashboard.
func (r *Renderer) OnChanges(changes []domain.ChangedFile) {
	r.program.Send(MsgChanges{Changes: changes})
}
