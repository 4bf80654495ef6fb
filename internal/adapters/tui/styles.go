package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/stale/internal/ui/style"
)

var (
	colorWhite = lipgloss.Color("#FFFFFF")

	// Pane Styles.
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	changePaneStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// Directory Status Styles.
	dirIdleStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	dirChangedStyle = lipgloss.NewStyle().
			Foreground(style.Yellow).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(colorWhite)
)
