package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// NewModel creates a new dashboard model with default settings.
func NewModel() Model {
	return Model{
		Dirs:       make([]*DirNode, 0),
		DirMap:     make(map[string]*DirNode),
		Viewport:   viewport.New(0, 0),
		Spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		AutoScroll: true,
	}
}
