// Package tui provides the interactive terminal view of a watch session.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/orchay/internal/ui/output"
)

// DefaultMaxEvents bounds the number of notifications kept in memory.
const DefaultMaxEvents = 500

// NewModel creates a new TUI model with default settings.
func NewModel(w io.Writer) Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Entities:   make([]*EntityNode, 0),
		EntityMap:  make(map[string]*EntityNode),
		Events:     make([]Event, 0),
		MaxEvents:  DefaultMaxEvents,
		FollowMode: true,
	}
}
