package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/orchay/internal/adapters/detector"
	"go.trai.ch/orchay/internal/app"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/orchay/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mocksSet struct {
	factory  *mocks.MockSourceFactory
	config   *mocks.MockConfigStore
	projects *mocks.MockProjectStore
	logger   *mocks.MockLogger
}

func newApplication(t *testing.T) (*app.App, *mocksSet) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocksSet{
		factory:  mocks.NewMockSourceFactory(ctrl),
		config:   mocks.NewMockConfigStore(ctrl),
		projects: mocks.NewMockProjectStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	a := app.New(m.factory, m.config, m.projects, m.logger).
		WithOutput(io.Discard, io.Discard).
		WithDetector(func() detector.OutputMode { return detector.ModeLinear })
	return a, m
}

func providerFor(a *app.App, log ports.Logger) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}
}

type idleSource struct {
	batches chan ports.WatchBatch
	errs    chan error
}

func (s *idleSource) Batches() <-chan ports.WatchBatch { return s.batches }
func (s *idleSource) Errors() <-chan error             { return s.errs }
func (s *idleSource) Close() error                     { return nil }

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	a, m := newApplication(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, providerFor(a, m.logger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that a failing command is logged and returns 1.
func TestRun_ExecutionError(t *testing.T) {
	a, m := newApplication(t)

	m.config.EXPECT().BasePath().Return("", domain.ErrConfigReadFailed)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	exitCode := run(context.Background(), []string{"projects", "list"}, io.Discard, providerFor(a, m.logger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_SessionEnded verifies that an ended session is not logged a second time.
func TestRun_SessionEnded(t *testing.T) {
	a, m := newApplication(t)

	m.config.EXPECT().BasePath().Return("/work", nil)
	m.factory.EXPECT().Open(domain.ProjectsPath("/work")).Return(nil, domain.ErrWatchRootNotFound)
	// Logged once by the session itself.
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"watch"}, io.Discard, providerFor(a, m.logger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that canceling the context ends a watch cleanly.
func TestRun_Signal(t *testing.T) {
	a, m := newApplication(t)

	src := &idleSource{batches: make(chan ports.WatchBatch), errs: make(chan error)}
	opened := make(chan struct{})

	m.config.EXPECT().BasePath().Return("/work", nil)
	m.factory.EXPECT().Open(gomock.Any()).DoAndReturn(func(string) (ports.EventSource, error) {
		close(opened)
		return src, nil
	})
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"watch"}, io.Discard, providerFor(a, m.logger))
	}()

	select {
	case <-opened:
	case <-time.After(2 * time.Second):
		t.Fatal("watch session never opened its source")
	}

	cancel()

	select {
	case ret := <-errCh:
		assert.Equal(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
