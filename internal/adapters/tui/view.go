package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/orchay/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.entityList(),
		m.eventPane(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.statusLine(),
		body,
		m.footer(),
	)
}

func (m *Model) statusLine() string {
	if m.Alive {
		return aliveStyle.Render(style.Dot+" watching") + " " + m.Root
	}
	if m.Root != "" {
		return idleStyle.Render(style.Circle+" stopped") + " " + m.Root
	}
	return idleStyle.Render(style.Circle + " starting")
}

func (m *Model) entityList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ENTITIES") + "\n\n")

	if len(m.Entities) == 0 {
		s.WriteString(faintStyle.Render("no changes yet") + "\n")
		return listStyle.Render(s.String())
	}

	start := m.ListOffset
	end := min(m.ListOffset+m.ListHeight, len(m.Entities))
	start = min(start, end)

	for i := start; i < end; i++ {
		s.WriteString(m.renderEntityRow(i, m.Entities[i]) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderEntityRow(index int, node *EntityNode) string {
	rowStyle := entityStyle
	if n := len(m.Events); n > 0 && m.Events[n-1].Entity == node {
		rowStyle = entityRecentStyle
	}

	cursor := "  "
	if index == m.SelectedIdx && !m.FollowMode {
		cursor = selectedStyle.Render(">") + " "
		rowStyle = selectedStyle
	}

	return cursor + rowStyle.Render(fmt.Sprintf("%s (%d)", node.ID, node.Changes))
}

func (m *Model) eventPane() string {
	title := "ALL CHANGES"
	if !m.FollowMode {
		if node := m.Selected(); node != nil {
			title = strings.ToUpper(node.ID)
		}
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(title) + "\n")

	for _, e := range m.visibleEvents() {
		n := e.Notification
		stamp := n.Timestamp
		if t, err := n.Time(); err == nil {
			stamp = t.Local().Format(time.TimeOnly)
		}
		line := fmt.Sprintf("%s %s %s", faintStyle.Render(stamp), style.Arrow, n.Path)
		if m.EventWidth > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.EventWidth).Render(line)
		}
		s.WriteString(line + "\n")
	}

	return eventPaneStyle.Render(strings.TrimSuffix(s.String(), "\n"))
}

func (m *Model) footer() string {
	var parts []string

	if b := m.LastBatch; b != nil {
		if b.Err != nil {
			parts = append(parts, errorStyle.Render(fmt.Sprintf("%s last batch failed: %v", style.Cross, b.Err)))
		} else {
			parts = append(parts, fmt.Sprintf("last batch: %d event(s), %d notification(s) in %v",
				b.Size, b.Emitted, b.Duration.Round(time.Microsecond)))
		}
	}
	parts = append(parts, fmt.Sprintf("%d batch(es)", m.Batches))
	if m.Failures > 0 {
		parts = append(parts, errorStyle.Render(fmt.Sprintf("%d failed", m.Failures)))
	}
	parts = append(parts, "j/k select · esc all · c clear · q quit")

	return faintStyle.Render(strings.Join(parts, " · "))
}
