package ports

import "time"

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
	// OpChmod indicates the attributes of a file changed.
	OpChmod
)

// String returns the lowercase name of the operation.
func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	case OpChmod:
		return "chmod"
	default:
		return "unknown"
	}
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
	// ObservedAt is when the watcher received the event.
	ObservedAt time.Time
}

// WatchBatch is the set of events that arrived within one debounce window,
// one entry per path, ordered by first arrival.
type WatchBatch []WatchEvent

// EventSource delivers debounced batches for one watch root.
type EventSource interface {
	// Batches returns the FIFO channel of batches. It is closed when the
	// underlying watcher terminates or the source is closed.
	Batches() <-chan WatchBatch
	// Errors returns recoverable errors reported by the underlying watcher.
	Errors() <-chan error
	// Close stops watching and releases all resources.
	Close() error
}

// SourceFactory opens event sources.
type SourceFactory interface {
	// Open validates root and starts watching it recursively.
	// Setup failures are returned synchronously and leave nothing running.
	Open(root string) (EventSource, error)
}
