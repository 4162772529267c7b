package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orchay/internal/adapters/watcher"
	"go.trai.ch/orchay/internal/core/ports"
)

func write(path string) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: ports.OpWrite, ObservedAt: time.Now()}
}

func paths(batch ports.WatchBatch) []string {
	out := make([]string, 0, len(batch))
	for _, ev := range batch {
		out = append(out, ev.Path)
	}
	return out
}

func TestNewDebouncer(t *testing.T) {
	tests := []struct {
		name     string
		window   time.Duration
		callback func(ports.WatchBatch)
	}{
		{
			name:     "with callback",
			window:   100 * time.Millisecond,
			callback: func(ports.WatchBatch) {},
		},
		{
			name:     "with nil callback",
			window:   50 * time.Millisecond,
			callback: nil,
		},
		{
			name:     "with zero window",
			window:   0,
			callback: func(ports.WatchBatch) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := watcher.NewDebouncer(tt.window, tt.callback)
			require.NotNil(t, d)
			assert.Equal(t, 0, d.Pending())
		})
	}
}

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches []ports.WatchBatch

		d := watcher.NewDebouncer(300*time.Millisecond, func(batch ports.WatchBatch) {
			batches = append(batches, batch)
		})

		d.Add(write("/r/projA/wbs.yaml"))

		time.Sleep(350 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/r/projA/wbs.yaml"}, paths(batches[0]))
	})
}

func TestDebouncer_Add_BurstCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches []ports.WatchBatch

		d := watcher.NewDebouncer(300*time.Millisecond, func(batch ports.WatchBatch) {
			batches = append(batches, batch)
		})

		// Editors typically write, rename and chmod in quick succession.
		d.Add(write("/r/projA/wbs.yaml"))
		time.Sleep(100 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/r/projA/wbs.yaml", Operation: ports.OpRename})
		time.Sleep(100 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/r/projA/wbs.yaml", Operation: ports.OpChmod})

		time.Sleep(350 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		require.Len(t, batches[0], 1)
		assert.Equal(t, "/r/projA/wbs.yaml", batches[0][0].Path)
		assert.Equal(t, ports.OpChmod, batches[0][0].Operation, "latest operation wins")
	})
}

func TestDebouncer_Add_PreservesFirstArrivalOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches []ports.WatchBatch

		d := watcher.NewDebouncer(100*time.Millisecond, func(batch ports.WatchBatch) {
			batches = append(batches, batch)
		})

		d.Add(write("/r/b/wbs.yaml"))
		d.Add(write("/r/a/wbs.yaml"))
		d.Add(write("/r/b/wbs.yaml"))
		d.Add(write("/r/c/wbs.yaml"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/r/b/wbs.yaml", "/r/a/wbs.yaml", "/r/c/wbs.yaml"}, paths(batches[0]))
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var mu sync.Mutex

		d := watcher.NewDebouncer(100*time.Millisecond, func(ports.WatchBatch) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		// First add starts the timer
		d.Add(write("/r/projA/wbs.yaml"))
		time.Sleep(50 * time.Millisecond)

		// Second add resets the timer
		d.Add(write("/r/projB/wbs.yaml"))
		time.Sleep(50 * time.Millisecond)

		// 100ms after the first add the window has not elapsed for the second one.
		synctest.Wait()
		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches []ports.WatchBatch

		d := watcher.NewDebouncer(100*time.Millisecond, func(batch ports.WatchBatch) {
			batches = append(batches, batch)
		})

		d.Add(write("/r/projA/wbs.yaml"))
		time.Sleep(150 * time.Millisecond)
		d.Add(write("/r/projB/wbs.yaml"))
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 2)
		assert.Equal(t, []string{"/r/projA/wbs.yaml"}, paths(batches[0]))
		assert.Equal(t, []string{"/r/projB/wbs.yaml"}, paths(batches[1]))
	})
}

func TestDebouncer_Flush_Immediate(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received ports.WatchBatch

		d := watcher.NewDebouncer(100*time.Millisecond, func(batch ports.WatchBatch) {
			callCount++
			received = batch
		})

		d.Add(write("/r/projA/wbs.yaml"))
		d.Add(write("/r/projB/wbs.yaml"))

		// Flush immediately, before timer fires
		d.Flush()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/r/projA/wbs.yaml", "/r/projB/wbs.yaml"}, paths(received))

		// The cancelled timer must not deliver a second, empty batch.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func(ports.WatchBatch) {
		callCount++
	})

	d.Flush()

	assert.Equal(t, 0, callCount)
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(50*time.Millisecond, func(ports.WatchBatch) {
			callCount++
		})

		d.Add(write("/r/projA/wbs.yaml"))

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)

		// Flush after timer already fired - should not call again
		d.Flush()

		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(50*time.Millisecond, func(ports.WatchBatch) {
			callCount++
		})

		d.Add(write("/r/projA/wbs.yaml"))
		d.Stop()
		d.Add(write("/r/projB/wbs.yaml"))

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
		assert.Equal(t, 0, d.Pending())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		// Should not panic when adding paths
		d.Add(write("/r/projA/wbs.yaml"))
		d.Add(write("/r/projB/wbs.yaml"))

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()
	})
}
