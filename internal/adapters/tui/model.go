// Package tui provides an interactive dashboard for the watch loop.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/ui/style"
)

const (
	dirListWidthRatio  = 0.35
	changePaneBorder   = 4
	changePaneHeadroom = 2
)

// DirStatus represents the current state of a watched directory.
type DirStatus string

const (
	// StatusIdle indicates no tracked file of the directory changed yet.
	StatusIdle DirStatus = "Idle"
	// StatusChanged indicates at least one tracked file of the directory changed.
	StatusChanged DirStatus = "Changed"
)

// DirNode represents a single watched directory in the UI list.
type DirNode struct {
	Dir    string
	Status DirStatus
	Stale  int
}

// Model represents the dashboard state.
type Model struct {
	Dirs       []*DirNode
	DirMap     map[string]*DirNode
	Interval   time.Duration
	Lines      []string
	Batches    int
	Viewport   viewport.Model
	Spinner    spinner.Model
	AutoScroll bool
	ListWidth  int
}

// Init starts the activity spinner.
func (m *Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.ListWidth = int(float64(msg.Width) * dirListWidthRatio)
		m.Viewport.Width = msg.Width - m.ListWidth - changePaneBorder
		m.Viewport.Height = msg.Height - changePaneHeadroom
		m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case MsgWatchStart:
		m.Interval = msg.Interval
		m.Dirs = make([]*DirNode, 0, len(msg.Dirs))
		m.DirMap = make(map[string]*DirNode, len(msg.Dirs))
		for _, dir := range msg.Dirs {
			m.node(dir)
		}

	case MsgChanges:
		m.Batches++
		for _, ch := range msg.Changes {
			node := m.node(ch.Dir)
			node.Status = StatusChanged
			node.Stale++
			m.Lines = append(m.Lines, FormatChange(ch))
		}
		m.refresh()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "f":
		m.AutoScroll = true
		m.Viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	m.AutoScroll = m.Viewport.AtBottom()
	return m, cmd
}

// node returns the entry of dir, adding it when a change arrives for an unlisted directory.
func (m *Model) node(dir string) *DirNode {
	if m.DirMap == nil {
		m.DirMap = make(map[string]*DirNode)
	}
	if node, ok := m.DirMap[dir]; ok {
		return node
	}
	node := &DirNode{Dir: dir, Status: StatusIdle}
	m.Dirs = append(m.Dirs, node)
	m.DirMap[dir] = node
	return node
}

func (m *Model) refresh() {
	m.Viewport.SetContent(strings.Join(m.Lines, "\n"))
	if m.AutoScroll {
		m.Viewport.GotoBottom()
	}
}

// FormatChange renders one changed file as a single line.
func FormatChange(ch domain.ChangedFile) string {
	at := ch.ModTime.Time().Local().Format(time.TimeOnly)
	if ch.Relocated() {
		return at + " " + style.Arrow + " " + ch.Nominal() + " " + style.Arrow + " " + ch.Path + " (" + ch.Package.Name() + ")"
	}
	return at + " " + style.Tilde + " " + ch.Path + " (" + ch.Package.Name() + ")"
}
