// Package session runs the single background watch session and controls its lifecycle.
package session

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
)

var _ ports.WatchSession = (*Supervisor)(nil)

// StatusObserver is told when a session becomes alive and when it exits.
type StatusObserver interface {
	OnSessionStatus(root string, alive bool)
}

// Supervisor owns at most one watch session at a time.
type Supervisor struct {
	factory  ports.SourceFactory
	sink     ports.EventSink
	logger   ports.Logger
	tracer   ports.Tracer
	observer StatusObserver

	fileName string
	now      func() time.Time

	// mu guards the fields below; alive and notifications are read lock-free.
	mu        sync.Mutex
	state     domain.SessionState
	cancel    context.CancelFunc
	done      chan struct{}
	root      string
	startedAt time.Time

	alive         atomic.Bool
	notifications atomic.Int64
}

// NewSupervisor creates an idle Supervisor.
func NewSupervisor(
	factory ports.SourceFactory,
	sink ports.EventSink,
	log ports.Logger,
	tracer ports.Tracer,
) *Supervisor {
	return &Supervisor{
		factory:  factory,
		sink:     sink,
		logger:   log,
		tracer:   tracer,
		fileName: domain.WBSFileName,
		now:      time.Now,
		state:    domain.SessionIdle,
	}
}

// WithFileName sets the base name of the files that produce notifications.
func (s *Supervisor) WithFileName(name string) *Supervisor {
	s.fileName = name
	return s
}

// WithObserver registers an observer for session status changes.
func (s *Supervisor) WithObserver(o StatusObserver) *Supervisor {
	s.observer = o
	return s
}

// WithClock replaces the clock used to stamp notifications.
// This is primarily used for testing.
func (s *Supervisor) WithClock(now func() time.Time) *Supervisor {
	s.now = now
	return s
}

// Start launches a session watching root in the background.
// It returns false if a session is running or still shutting down. A relative
// root is made absolute against the working directory so notifications always
// carry absolute paths. The root is not otherwise validated here; an unusable
// root makes the session end without ever becoming alive.
func (s *Supervisor) Start(root string) bool {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.SessionIdle {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.state = domain.SessionRunning
	s.cancel = cancel
	s.done = done
	s.root = root
	s.startedAt = s.now()
	s.notifications.Store(0)

	go s.run(ctx, root, done)

	return true
}

// Stop asks the running session to stop and returns without waiting.
// It returns false if no session is running.
func (s *Supervisor) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.SessionRunning {
		return false
	}

	s.state = domain.SessionStopRequested
	s.cancel()
	return true
}

// Status reports whether the session goroutine is alive.
func (s *Supervisor) Status() bool {
	return s.alive.Load()
}

// Wait blocks until the current session has exited or ctx is done.
// It returns immediately when no session was ever started.
func (s *Supervisor) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Info returns a snapshot of the session.
func (s *Supervisor) Info() domain.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.SessionInfo{
		State:         s.state,
		Alive:         s.alive.Load(),
		Root:          s.root,
		StartedAt:     s.startedAt,
		Notifications: s.notifications.Load(),
	}
}

// finish returns the supervisor to idle once the session goroutine is done.
func (s *Supervisor) finish(done chan struct{}) {
	s.alive.Store(false)

	s.mu.Lock()
	if s.done == done {
		s.state = domain.SessionIdle
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
	}
	s.mu.Unlock()

	close(done)
}
