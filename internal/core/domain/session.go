package domain

import "time"

// SessionState is the lifecycle state of the watch session.
type SessionState uint8

const (
	// SessionIdle means no session goroutine exists.
	SessionIdle SessionState = iota
	// SessionRunning means a session goroutine was started and no stop was requested.
	SessionRunning
	// SessionStopRequested means the session was asked to stop and has not exited yet.
	SessionStopRequested
)

// String returns the lowercase name of the state.
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionRunning:
		return "running"
	case SessionStopRequested:
		return "stop_requested"
	default:
		return "unknown"
	}
}

// SessionInfo is a point-in-time snapshot of the watch session.
type SessionInfo struct {
	State         SessionState
	Alive         bool
	Root          string
	StartedAt     time.Time
	Notifications int64
}

// BatchSummary describes one processed debounce batch.
type BatchSummary struct {
	Size     int
	Emitted  int
	Duration time.Duration
	Err      error
}

const (
	// BatchSpanName is the name of the span recorded for every processed batch.
	BatchSpanName = "session.batch"
	// AttrBatchSize is the span attribute holding the number of events in a batch.
	AttrBatchSize = "batch.size"
	// AttrBatchEmitted is the span attribute holding the number of notifications emitted.
	AttrBatchEmitted = "batch.emitted"
	// AttrSessionRoot is the span attribute holding the watch root.
	AttrSessionRoot = "session.root"
)
