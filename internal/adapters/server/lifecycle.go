package server

import (
	"sync"
	"time"
)

// Lifecycle tracks server uptime and activity and triggers shutdown either on
// request or after a period of inactivity.
type Lifecycle struct {
	mu           sync.Mutex
	timer        *time.Timer
	startTime    time.Time
	lastActivity time.Time
	timeout      time.Duration
	busy         func() bool
	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewLifecycle creates a lifecycle manager. A zero timeout disables the idle shutdown.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	now := time.Now()
	l := &Lifecycle{
		startTime:    now,
		lastActivity: now,
		timeout:      timeout,
		shutdownChan: make(chan struct{}),
	}
	if timeout > 0 {
		l.timer = time.AfterFunc(timeout, l.onIdle)
	}
	return l
}

// WithBusy registers a check consulted when the idle timeout expires. While it
// reports true, for example because stream subscribers are connected, the
// server counts as active and the timer starts over.
func (l *Lifecycle) WithBusy(busy func() bool) *Lifecycle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = busy
	return l
}

func (l *Lifecycle) onIdle() {
	l.mu.Lock()
	busy := l.busy
	l.mu.Unlock()

	if busy != nil && busy() {
		l.Touch()
		return
	}
	l.triggerShutdown()
}

// Touch records activity and resets the idle timer.
func (l *Lifecycle) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastActivity = time.Now()
	if l.timer != nil {
		l.timer.Reset(l.timeout)
	}
}

// IdleRemaining returns the duration until the idle shutdown, or zero when disabled.
func (l *Lifecycle) IdleRemaining() time.Duration {
	if l.timeout <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	remaining := l.timeout - time.Since(l.lastActivity)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Uptime returns how long the server has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.startTime)
}

// LastActivity returns the timestamp of the last request.
func (l *Lifecycle) LastActivity() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastActivity
}

// Done returns a channel that closes when shutdown is triggered.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdownChan
}

func (l *Lifecycle) triggerShutdown() {
	l.shutdownOnce.Do(func() {
		close(l.shutdownChan)
	})
}

// Shutdown stops the idle timer and triggers shutdown. It is idempotent.
func (l *Lifecycle) Shutdown() {
	if l.timer != nil {
		l.timer.Stop()
	}
	l.triggerShutdown()
}
