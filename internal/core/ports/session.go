package ports

import (
	"context"

	"go.trai.ch/orchay/internal/core/domain"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// WatchSession is the control surface of the single watch session.
type WatchSession interface {
	// Start begins watching root in the background. It returns false and does
	// nothing when a session already exists.
	Start(root string) bool
	// Stop requests the running session to stop and returns immediately.
	// It returns false when no session is running.
	Stop() bool
	// Status reports whether a session goroutine is currently alive.
	Status() bool
	// Wait blocks until the current session goroutine has exited or ctx is done.
	Wait(ctx context.Context) error
	// Info returns a snapshot of the session.
	Info() domain.SessionInfo
}
