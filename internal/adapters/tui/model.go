package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/orchay/internal/core/domain"
)

const (
	entityListWidthRatio = 0.3
	eventPaneBorderWidth = 4
	// chromeHeight is the number of lines taken by the header, status and footer.
	chromeHeight = 5
)

// EntityNode is one entity in the list on the left.
type EntityNode struct {
	ID      string
	Changes int
}

// Event is one received notification.
type Event struct {
	Notification domain.Notification
	Entity       *EntityNode
}

// Model represents the TUI state.
type Model struct {
	Entities  []*EntityNode
	EntityMap map[string]*EntityNode
	Events    []Event
	MaxEvents int
	// Dropped counts events evicted from the window.
	Dropped int

	Root      string
	Alive     bool
	LastBatch *domain.BatchSummary
	Batches   int
	Failures  int

	SelectedIdx int
	ListOffset  int
	ListHeight  int
	EventWidth  int
	EventHeight int
	// FollowMode shows the events of every entity; otherwise only the selected one.
	FollowMode bool
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

// Selected returns the selected entity, or nil when the list is empty.
func (m *Model) Selected() *EntityNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Entities) {
		return m.Entities[m.SelectedIdx]
	}
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Entities)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
			}
		case "esc":
			m.FollowMode = true
		case "c":
			m.clear()
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * entityListWidthRatio)
		m.EventWidth = msg.Width - listWidth - eventPaneBorderWidth
		m.ListHeight = msg.Height - chromeHeight
		if m.ListHeight < 1 {
			m.ListHeight = 1
		}
		m.EventHeight = m.ListHeight - 2
		if m.EventHeight < 1 {
			m.EventHeight = 1
		}
		m.ensureVisible()

	case MsgNotification:
		m.addNotification(msg.Notification)

	case MsgSessionStatus:
		m.Root = msg.Root
		m.Alive = msg.Alive

	case MsgBatch:
		summary := msg.Summary
		m.LastBatch = &summary
		m.Batches++
		if summary.Err != nil {
			m.Failures++
		}
	}

	return m, nil
}

func (m *Model) addNotification(n domain.Notification) {
	if m.EntityMap == nil {
		m.EntityMap = make(map[string]*EntityNode)
	}

	node, ok := m.EntityMap[n.EntityID]
	if !ok {
		node = &EntityNode{ID: n.EntityID}
		m.EntityMap[n.EntityID] = node
		m.Entities = append(m.Entities, node)
	}
	node.Changes++

	m.Events = append(m.Events, Event{Notification: n, Entity: node})
	if m.MaxEvents > 0 && len(m.Events) > m.MaxEvents {
		evict := len(m.Events) - m.MaxEvents
		m.Events = append(m.Events[:0:0], m.Events[evict:]...)
		m.Dropped += evict
	}

	if m.FollowMode {
		for i, e := range m.Entities {
			if e == node {
				m.SelectedIdx = i
				break
			}
		}
		m.ensureVisible()
	}
}

func (m *Model) clear() {
	m.Entities = m.Entities[:0]
	m.EntityMap = make(map[string]*EntityNode)
	m.Events = m.Events[:0]
	m.Dropped = 0
	m.SelectedIdx = 0
	m.ListOffset = 0
	m.FollowMode = true
}

// visibleEvents returns the events shown in the event pane, oldest first.
func (m *Model) visibleEvents() []Event {
	var filter *EntityNode
	if !m.FollowMode {
		filter = m.Selected()
	}

	out := make([]Event, 0, len(m.Events))
	for _, e := range m.Events {
		if filter != nil && e.Entity != filter {
			continue
		}
		out = append(out, e)
	}

	height := m.EventHeight
	if height > 0 && len(out) > height {
		out = out[len(out)-height:]
	}
	return out
}
