// Package watcher implements debounced, recursive file system watching of a project tree.
package watcher

import (
	"sync"
	"time"
	"unique"

	"go.trai.ch/orchay/internal/core/ports"
)

// Debouncer coalesces rapid file system events into ordered batches.
// A batch is released once no new event has arrived for the whole window.
type Debouncer struct {
	mu      sync.Mutex
	pending map[unique.Handle[string]]int
	order   ports.WatchBatch
	timer   *time.Timer
	gen     uint64
	stopped bool
	window  time.Duration

	// deliverMu serializes callbacks so batches reach the consumer in window order.
	deliverMu sync.Mutex
	callback  func(batch ports.WatchBatch)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(batch ports.WatchBatch)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]int),
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the quiet period.
// Repeated events for the same path collapse into one entry that keeps the
// position of the first event and the operation of the latest one.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	handle := unique.Make(event.Path)
	if idx, ok := d.pending[handle]; ok {
		d.order[idx].Operation = event.Operation
		d.order[idx].ObservedAt = event.ObservedAt
	} else {
		d.pending[handle] = len(d.order)
		d.order = append(d.order, event)
	}

	// A timer that already fired but has not taken the lock yet sees a stale
	// generation and leaves the batch for the new timer.
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(gen)
	})
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	batch := d.takeLocked()
	d.mu.Unlock()

	d.deliver(batch)
}

// Flush immediately releases all pending events as one batch.
// This method blocks until the callback completes, making it suitable for
// graceful shutdown scenarios where work must finish before proceeding.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	batch := d.takeLocked()
	d.mu.Unlock()

	d.deliver(batch)
}

// Stop discards pending events and ignores any further Add calls.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[unique.Handle[string]]int)
	d.order = nil
}

// Pending returns the number of distinct paths waiting for the window to elapse.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

func (d *Debouncer) takeLocked() ports.WatchBatch {
	batch := d.order
	d.order = nil
	d.pending = make(map[unique.Handle[string]]int)
	return batch
}

func (d *Debouncer) deliver(batch ports.WatchBatch) {
	if len(batch) == 0 || d.callback == nil {
		return
	}
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()
	d.callback(batch)
}
