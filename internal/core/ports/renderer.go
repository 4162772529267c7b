package ports

import (
	"context"

	"go.trai.ch/orchay/internal/core/domain"
)

// Renderer presents a foreground watch session in the terminal.
// It receives notifications as an EventSink so the session can drive either a
// rich TUI or linear logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	EventSink

	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop and flush its output.
	Stop() error

	// Wait blocks until the renderer has fully terminated, for example because
	// the user quit the TUI. Synchronous renderers block until Stop is called.
	Wait() error

	// OnSessionStatus is called when the session becomes alive or exits.
	OnSessionStatus(root string, alive bool)

	// OnBatch is called after the session has processed a debounce batch.
	OnBatch(summary domain.BatchSummary)
}
