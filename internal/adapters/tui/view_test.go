package tui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/orchay/internal/adapters/tui"
	"go.trai.ch/orchay/internal/core/domain"
)

func asciiModel(t *testing.T) *tui.Model {
	t.Helper()
	m := newModel()
	lipgloss.SetColorProfile(termenv.Ascii)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
}

func TestView_Initializing(t *testing.T) {
	assert.Equal(t, "Initializing...", newModel().View())
}

func TestView_Empty(t *testing.T) {
	view := asciiModel(t).View()

	assert.Contains(t, view, "ENTITIES")
	assert.Contains(t, view, "no changes yet")
	assert.Contains(t, view, "starting")
	assert.Contains(t, view, "q quit")
}

func TestView_Notifications(t *testing.T) {
	m := update(t, asciiModel(t),
		tui.MsgSessionStatus{Root: "/r", Alive: true},
		notify("projA"),
		notify("projB"),
		notify("projA"),
		tui.MsgBatch{Summary: domain.BatchSummary{Size: 2, Emitted: 1}},
	)

	view := m.View()
	assert.Contains(t, view, "watching /r")
	assert.Contains(t, view, "projA (2)")
	assert.Contains(t, view, "projB (1)")
	assert.Contains(t, view, "ALL CHANGES")
	assert.Contains(t, view, "/r/projB/wbs.yaml")
	assert.Contains(t, view, "last batch: 2 event(s), 1 notification(s)")
}

func TestView_SelectedEntity(t *testing.T) {
	m := update(t, asciiModel(t), notify("projA"), notify("projB"), tea.KeyMsg{Type: tea.KeyUp})

	view := m.View()
	assert.Contains(t, view, "PROJA")
	assert.Contains(t, view, "> projA (1)")
	assert.Contains(t, view, "/r/projA/wbs.yaml")
	assert.NotContains(t, view, "/r/projB/wbs.yaml")
}

func TestView_FailedBatch(t *testing.T) {
	m := update(t, asciiModel(t),
		tui.MsgSessionStatus{Root: "/r", Alive: false},
		tui.MsgBatch{Summary: domain.BatchSummary{Size: 1, Err: errors.New("sink down")}},
	)

	view := m.View()
	assert.Contains(t, view, "stopped /r")
	assert.Contains(t, view, "last batch failed: sink down")
	assert.Contains(t, view, "1 failed")
}
