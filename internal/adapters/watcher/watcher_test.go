package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orchay/internal/adapters/watcher"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
)

const testWindow = 50 * time.Millisecond

func openSource(t *testing.T, root string) *watcher.Source {
	t.Helper()
	s, err := watcher.NewSource(root, testWindow)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// collect gathers every batch received until the channel is quiet for the given period.
func collect(t *testing.T, s *watcher.Source, quiet time.Duration) []ports.WatchBatch {
	t.Helper()
	var batches []ports.WatchBatch
	for {
		select {
		case batch, ok := <-s.Batches():
			if !ok {
				return batches
			}
			batches = append(batches, batch)
		case <-time.After(quiet):
			return batches
		}
	}
}

func containsPath(batches []ports.WatchBatch, path string) bool {
	for _, batch := range batches {
		for _, ev := range batch {
			if ev.Path == path {
				return true
			}
		}
	}
	return false
}

func TestNewSource_RootNotFound(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	s, err := watcher.NewSource(root, testWindow)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), domain.ErrWatchRootNotFound.Error())
}

func TestNewSource_RootNotDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), domain.FilePerm))

	s, err := watcher.NewSource(root, testWindow)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), domain.ErrWatchRootNotDir.Error())
}

func TestNewSource_RelativeRoot(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "projects"), domain.DirPerm))
	t.Chdir(base)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	s := openSource(t, "projects")
	assert.Equal(t, filepath.Join(cwd, "projects"), s.Root())
}

func TestFactory_Open(t *testing.T) {
	t.Run("valid root", func(t *testing.T) {
		src, err := watcher.NewFactory(0).Open(t.TempDir())
		require.NoError(t, err)
		require.NotNil(t, src)
		require.NoError(t, src.Close())
	})

	t.Run("invalid root returns untyped nil", func(t *testing.T) {
		src, err := watcher.NewFactory(testWindow).Open(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.Nil(t, src)
	})
}

func TestSource_WriteProducesBatch(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "projA")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	target := filepath.Join(dir, domain.WBSFileName)
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), domain.FilePerm))

	s := openSource(t, root)
	assert.Equal(t, root, s.Root())

	require.NoError(t, os.WriteFile(target, []byte("a: 2\n"), domain.FilePerm))

	batches := collect(t, s, 500*time.Millisecond)
	require.NotEmpty(t, batches)
	assert.True(t, containsPath(batches, target))
}

func TestSource_RapidWritesCoalesce(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "projA")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	target := filepath.Join(dir, domain.WBSFileName)
	require.NoError(t, os.WriteFile(target, []byte("v: 0\n"), domain.FilePerm))

	s := openSource(t, root)

	for i := range 3 {
		require.NoError(t, os.WriteFile(target, []byte{byte('0' + i)}, domain.FilePerm))
		time.Sleep(5 * time.Millisecond)
	}

	batches := collect(t, s, 500*time.Millisecond)
	require.Len(t, batches, 1)

	count := 0
	for _, ev := range batches[0] {
		if ev.Path == target {
			count++
		}
	}
	assert.Equal(t, 1, count, "a path appears at most once per batch")
}

func TestSource_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	s := openSource(t, root)

	dir := filepath.Join(root, "projB")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))

	// Let the watcher attach to the new directory before writing into it.
	_ = collect(t, s, 200*time.Millisecond)

	target := filepath.Join(dir, domain.WBSFileName)
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), domain.FilePerm))

	batches := collect(t, s, 500*time.Millisecond)
	assert.True(t, containsPath(batches, target))
}

func TestSource_SkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	ignored := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(ignored, domain.DirPerm))

	s := openSource(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(ignored, "HEAD"), []byte("x"), domain.FilePerm))

	batches := collect(t, s, 300*time.Millisecond)
	assert.False(t, containsPath(batches, filepath.Join(ignored, "HEAD")))
}

func TestSource_CloseClosesChannels(t *testing.T) {
	s, err := watcher.NewSource(t.TempDir(), testWindow)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	select {
	case _, ok := <-s.Batches():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("batches channel was not closed")
	}

	select {
	case _, ok := <-s.Errors():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("errors channel was not closed")
	}
}
