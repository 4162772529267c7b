// Package app implements the application layer for orchay.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/orchay/internal/adapters/detector"
	"go.trai.ch/orchay/internal/adapters/linear"
	"go.trai.ch/orchay/internal/adapters/server"
	"go.trai.ch/orchay/internal/adapters/telemetry"
	"go.trai.ch/orchay/internal/adapters/tui"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/orchay/internal/engine/session"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// stopTimeout bounds how long shutdown waits for the session to exit.
const stopTimeout = 5 * time.Second

// Closer releases a resource that cannot fail to close.
type Closer interface {
	Close()
}

// App represents the main application logic.
type App struct {
	factory  ports.SourceFactory
	config   ports.ConfigStore
	projects ports.ProjectStore
	logger   ports.Logger

	workspace ports.Workspace

	session ports.WatchSession
	server  *server.Server
	stream  Closer

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
	detect     func() detector.OutputMode
}

// New creates a new App instance.
func New(
	factory ports.SourceFactory,
	config ports.ConfigStore,
	projects ports.ProjectStore,
	log ports.Logger,
) *App {
	return &App{
		factory:  factory,
		config:   config,
		projects: projects,
		logger:   log,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		detect:   detector.DetectEnvironment,
	}
}

// WithServer attaches the background session, the HTTP server and the
// notification stream used by Serve.
func (a *App) WithServer(sess ports.WatchSession, srv *server.Server, stream Closer) *App {
	a.session = sess
	a.server = srv
	a.stream = stream
	return a
}

// WithWorkspace attaches the workspace layout and settings store.
func (a *App) WithWorkspace(ws ports.Workspace) *App {
	a.workspace = ws
	return a
}

// WithOutput sets the streams used by the watch renderers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDetector replaces terminal detection for the auto output mode.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// WatchOptions configures the Watch method.
type WatchOptions struct {
	BasePath   string
	OutputMode string
	Verbose    bool
}

// Watch runs a foreground session on the projects directory below the base
// path and renders its notifications until ctx is done or the user quits.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	override, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}

	base, err := a.resolveBase(opts.BasePath)
	if err != nil {
		return err
	}
	root := domain.ProjectsPath(base)

	renderer := a.newRenderer(detector.ResolveMode(a.detect(), override), opts.Verbose)

	// Batch spans reach the renderer through the bridge.
	tp := telemetry.Setup(telemetry.NewBridge(renderer))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName)

	sup := session.NewSupervisor(a.factory, renderer, a.logger, tracer).WithObserver(renderer)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// The user quitting the renderer ends the watch.
		defer cancel()
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() { _ = renderer.Stop() }()

		sup.Start(root)
		if err := sup.Wait(gctx); err == nil {
			return errors.Join(domain.ErrWatchSessionEnded, zerr.With(domain.ErrSessionNotRunning, "root", root))
		}
		return a.stopSession(ctx, sup)
	})

	return g.Wait()
}

func (a *App) newRenderer(mode detector.OutputMode, verbose bool) ports.Renderer {
	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		return tui.NewRenderer(&model, a.teaOptions...)
	}
	return linear.NewRenderer(a.stdout, a.stderr).WithVerbose(verbose)
}

// ServeOptions configures the Serve method.
type ServeOptions struct {
	Addr        string
	BasePath    string
	Autostart   bool
	IdleTimeout time.Duration
}

// Serve runs the HTTP server, optionally starting the background session first.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	if a.server == nil || a.session == nil {
		return zerr.With(domain.ErrServerFailed, "reason", "no server configured")
	}

	if opts.Autostart {
		base, err := a.resolveBase(opts.BasePath)
		if err != nil {
			return err
		}
		a.session.Start(domain.ProjectsPath(base))
	}

	addr := opts.Addr
	if addr == "" {
		addr = server.DefaultAddr
	}

	a.server.WithLifecycle(server.NewLifecycle(opts.IdleTimeout))
	serveErr := a.server.ListenAndServe(ctx, addr)

	stopErr := a.stopSession(ctx, a.session)
	if a.stream != nil {
		a.stream.Close()
	}

	return errors.Join(serveErr, stopErr)
}

// stopSession requests a stop and waits a bounded time for the session to exit.
func (a *App) stopSession(ctx context.Context, sess ports.WatchSession) error {
	sess.Stop()

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancel()
	if err := sess.Wait(waitCtx); err != nil {
		return zerr.Wrap(err, "watch session did not stop in time")
	}
	return nil
}

func (a *App) resolveBase(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return a.config.BasePath()
}

// BasePath returns the configured base path.
func (a *App) BasePath() (string, error) {
	return a.config.BasePath()
}

// SetBasePath changes the configured base path.
func (a *App) SetBasePath(path string) (*domain.BasePathChange, error) {
	change, err := a.config.SetBasePath(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("base path set to " + change.Current)
	return change, nil
}

// RecentPaths returns the recently used base paths, most recent first.
func (a *App) RecentPaths() ([]string, error) {
	return a.config.RecentPaths()
}

// ListProjects lists the projects below the configured base path.
func (a *App) ListProjects(status string) ([]domain.ProjectListItem, error) {
	base, err := a.config.BasePath()
	if err != nil {
		return nil, err
	}
	return a.projects.List(base, status)
}

// ReadWBS returns the raw wbs.yaml of a project below the configured base path.
func (a *App) ReadWBS(projectID string) ([]byte, error) {
	base, err := a.config.BasePath()
	if err != nil {
		return nil, err
	}
	content, _, err := a.projects.ReadWBS(base, projectID)
	return content, err
}

// InitStatus reports which workspace directories exist below the base path.
// An empty base means the configured one.
func (a *App) InitStatus(base string) (domain.InitStatus, error) {
	base, err := a.workspaceBase(base)
	if err != nil {
		return domain.InitStatus{}, err
	}
	return a.workspace.Status(base)
}

// Init creates the workspace directories below the base path.
// An empty base means the configured one.
func (a *App) Init(base string) (domain.InitStatus, error) {
	base, err := a.workspaceBase(base)
	if err != nil {
		return domain.InitStatus{}, err
	}

	status, err := a.workspace.Init(base)
	if err != nil {
		return domain.InitStatus{}, err
	}
	a.logger.Info(fmt.Sprintf("initialized workspace at %s", base))
	return status, nil
}

// Settings returns a settings document of the configured base path.
func (a *App) Settings(settingsType string) (json.RawMessage, error) {
	base, err := a.workspaceBase("")
	if err != nil {
		return nil, err
	}
	return a.workspace.Settings(base, settingsType)
}

func (a *App) workspaceBase(explicit string) (string, error) {
	if a.workspace == nil {
		return "", zerr.With(domain.ErrInitFailed, "reason", "no workspace configured")
	}
	return a.resolveBase(explicit)
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}
