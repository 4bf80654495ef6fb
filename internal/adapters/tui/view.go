package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/stale/internal/ui/style"
)

// View renders the directory list next to the change log.
func (m *Model) View() string {
	if m.Viewport.Height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.dirList(),
		m.changePane(),
	)
}

func (m *Model) dirList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DIRECTORIES") + "\n\n")

	for _, node := range m.Dirs {
		var line string
		switch node.Status {
		case StatusChanged:
			line = dirChangedStyle.Render(fmt.Sprintf("%s %s (%d)", style.Tilde, node.Dir, node.Stale))
		default:
			line = dirIdleStyle.Render("○ " + node.Dir)
		}
		s.WriteString(line + "\n")
	}

	s.WriteString("\n" + m.Spinner.View() + footerStyle.Render(fmt.Sprintf(" polling every %s", m.Interval)))

	return listStyle.Width(m.ListWidth).Render(s.String())
}

func (m *Model) changePane() string {
	var header string
	if len(m.Lines) == 0 {
		header = titleStyle.Render("CHANGES (Waiting...)")
	} else {
		mode := "Following"
		if !m.AutoScroll {
			mode = "Manual"
		}
		header = titleStyle.Render(fmt.Sprintf("CHANGES: %d in %d batches (%s)", len(m.Lines), m.Batches, mode))
	}

	return changePaneStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}
