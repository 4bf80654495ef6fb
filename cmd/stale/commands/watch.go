package commands

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/adapters/tui"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var dashboard bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll tracked files and report changes as they happen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r ports.Renderer
			if dashboard {
				model := tui.NewModel()
				r = tui.NewRenderer(&model, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
			} else {
				r = newStreamRenderer(c.printer(cmd), c.logger)
			}
			return c.app.Watch(cmd.Context(), c.configPath, r)
		},
	}

	cmd.Flags().BoolVar(&dashboard, "tui", false, "Show an interactive dashboard instead of streaming lines")

	return cmd
}

// streamRenderer writes every batch through the printer as it arrives.
type streamRenderer struct {
	printer printer
	logger  *logger.Logger
	done    chan struct{}
	once    sync.Once
}

var _ ports.Renderer = (*streamRenderer)(nil)

func newStreamRenderer(p printer, log *logger.Logger) *streamRenderer {
	return &streamRenderer{
		printer: p,
		logger:  log,
		done:    make(chan struct{}),
	}
}

func (r *streamRenderer) Start(context.Context) error {
	return nil
}

func (r *streamRenderer) Stop() error {
	r.once.Do(func() {
		close(r.done)
	})
	return nil
}

func (r *streamRenderer) Wait() error {
	<-r.done
	return nil
}

func (r *streamRenderer) OnWatchStart([]string, time.Duration) {}

func (r *streamRenderer) OnChanges(changes []domain.ChangedFile) {
	if err := r.printer.stream(changes); err != nil {
		r.logger.Error(err)
	}
}
