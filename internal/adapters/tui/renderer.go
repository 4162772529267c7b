package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the TUI Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// Emit implements ports.EventSink by forwarding the notification to the TUI.
func (r *Renderer) Emit(_ context.Context, n domain.Notification) error {
	r.program.Send(MsgNotification{Notification: n})
	return nil
}

// OnSessionStatus forwards session status changes to the TUI.
func (r *Renderer) OnSessionStatus(root string, alive bool) {
	r.program.Send(MsgSessionStatus{Root: root, Alive: alive})
}

// OnBatch forwards batch summaries to the TUI.
func (r *Renderer) OnBatch(summary domain.BatchSummary) {
	r.program.Send(MsgBatch{Summary: summary})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
