package watcher

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.EventSource   = (*Source)(nil)
	_ ports.SourceFactory = (*Factory)(nil)
)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const (
	batchChannelBuffer = 16
	errorChannelBuffer = 16
)

// Factory opens debounced sources with a fixed window.
type Factory struct {
	window time.Duration
}

// NewFactory creates a Factory. A non-positive window selects DefaultDebounceWindow.
func NewFactory(window time.Duration) *Factory {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Factory{window: window}
}

// Open implements ports.SourceFactory.
func (f *Factory) Open(root string) (ports.EventSource, error) {
	s, err := NewSource(root, f.window)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Source implements ports.EventSource using fsnotify and a Debouncer.
type Source struct {
	fsWatcher *fsnotify.Watcher
	root      string
	debouncer *Debouncer
	now       func() time.Time

	batches chan ports.WatchBatch
	errs    chan error
	done    chan struct{}

	// mu guards closed against batches being delivered while the channel closes.
	mu     sync.Mutex
	closed bool

	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewSource validates root and starts watching it and every directory below it.
func NewSource(root string, window time.Duration) (*Source, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWatchRootNotFound.Error()), "root", root)
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrWatchRootNotFound, "root", root)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWatchRootNotFound.Error()), "root", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrWatchRootNotDir, "root", root)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherCreateFailed.Error())
	}

	s := &Source{
		fsWatcher: fsWatcher,
		root:      root,
		now:       time.Now,
		batches:   make(chan ports.WatchBatch, batchChannelBuffer),
		errs:      make(chan error, errorChannelBuffer),
		done:      make(chan struct{}),
	}
	s.debouncer = NewDebouncer(window, s.deliver)

	for dir := range s.watchRecursively(root) {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrWatchPathFailed.Error()), "path", dir)
		}
	}

	s.wg.Add(1)
	go s.processEvents()

	return s, nil
}

// Root returns the watched directory.
func (s *Source) Root() string {
	return s.root
}

// Batches implements ports.EventSource.
func (s *Source) Batches() <-chan ports.WatchBatch {
	return s.batches
}

// Errors implements ports.EventSource.
func (s *Source) Errors() <-chan error {
	return s.errs
}

// Close stops the watcher and releases all resources.
// It waits for the event goroutine to exit and is safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.fsWatcher.Close()
		s.wg.Wait()
	})
	return s.closeErr
}

// deliver hands a batch to the consumer. It runs on the debouncer's timer goroutine.
func (s *Source) deliver(batch ports.WatchBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	select {
	case s.batches <- batch:
	case <-s.done:
	}
}

// shutdown discards pending events and closes the output channels.
func (s *Source) shutdown() {
	s.debouncer.Stop()
	close(s.done)

	s.mu.Lock()
	s.closed = true
	close(s.batches)
	s.mu.Unlock()

	close(s.errs)
}

// processEvents converts raw fsnotify events and feeds them to the debouncer.
// It exits when fsnotify closes its channels, either because Close was called
// or because the notifier died.
func (s *Source) processEvents() {
	defer s.wg.Done()
	defer s.shutdown()

	for {
		select {
		case event, ok := <-s.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event, s.now())
			if !ok {
				continue
			}
			s.debouncer.Add(watchEvent)

			// If a new directory was created, add it to the watcher.
			if watchEvent.Operation == ports.OpCreate {
				s.watchNewDirectory(event.Name)
			}

		case err, ok := <-s.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case s.errs <- zerr.Wrap(err, domain.ErrWatchEventFailed.Error()):
			default:
				// Consumer is behind; the error is dropped rather than stalling events.
			}
		}
	}
}

// watchNewDirectory adds a freshly created directory tree to the watcher.
// Files that appeared before the watch was attached are reported as created.
func (s *Source) watchNewDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || s.shouldSkip(info.Name()) {
		return
	}

	for dir := range s.watchRecursively(path) {
		_ = s.fsWatcher.Add(dir)

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			s.debouncer.Add(ports.WatchEvent{
				Path:       filepath.Join(dir, entry.Name()),
				Operation:  ports.OpCreate,
				ObservedAt: s.now(),
			})
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (s *Source) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Continue walking even if there's an error accessing a directory.
				return nil //nolint:nilerr // This is intentional - we want to skip problematic directories
			}
			if d.IsDir() {
				if path != root && s.shouldSkip(d.Name()) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// shouldSkip returns true if the directory should be skipped.
func (s *Source) shouldSkip(name string) bool {
	return shouldSkipDirectories[name]
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func convertEvent(event fsnotify.Event, at time.Time) (ports.WatchEvent, bool) {
	watchEvent := ports.WatchEvent{Path: event.Name, ObservedAt: at}

	switch {
	case event.Has(fsnotify.Write):
		watchEvent.Operation = ports.OpWrite
	case event.Has(fsnotify.Create):
		watchEvent.Operation = ports.OpCreate
	case event.Has(fsnotify.Remove):
		watchEvent.Operation = ports.OpRemove
	case event.Has(fsnotify.Rename):
		watchEvent.Operation = ports.OpRename
	case event.Has(fsnotify.Chmod):
		watchEvent.Operation = ports.OpChmod
	default:
		return ports.WatchEvent{}, false
	}

	return watchEvent, true
}
