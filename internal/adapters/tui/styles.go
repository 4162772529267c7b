package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/orchay/internal/ui/style"
)

var (
	entityStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	entityRecentStyle = lipgloss.NewStyle().
				Foreground(style.Green)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	aliveStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	idleStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	faintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.Mist)

	listStyle = lipgloss.NewStyle().
			PaddingRight(2)

	eventPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate).
			Padding(0, 1)
)
