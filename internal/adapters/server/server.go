// Package server exposes the watch session, the project store and the
// configuration store over HTTP, and streams notifications over WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultAddr is the address the server listens on when none is given.
	DefaultAddr = "127.0.0.1:7421"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Stream is the notification stream served on the watch endpoint.
type Stream interface {
	http.Handler
	Subscribers() int
	Published() int64
	Dropped() int64
}

// Server is the HTTP front of the watcher.
type Server struct {
	session   ports.WatchSession
	config    ports.ConfigStore
	projects  ports.ProjectStore
	workspace ports.Workspace
	stream    Stream
	logger    ports.Logger
	lifecycle *Lifecycle
}

// New creates a Server. The lifecycle has no idle timeout until WithLifecycle is used.
func New(
	session ports.WatchSession,
	config ports.ConfigStore,
	projects ports.ProjectStore,
	stream Stream,
	log ports.Logger,
) *Server {
	return &Server{
		session:   session,
		config:    config,
		projects:  projects,
		stream:    stream,
		logger:    log,
		lifecycle: NewLifecycle(0),
	}
}

// WithLifecycle replaces the lifecycle manager.
// Connected stream subscribers keep an idle server alive.
func (s *Server) WithLifecycle(l *Lifecycle) *Server {
	if s.stream != nil {
		l.WithBusy(func() bool { return s.stream.Subscribers() > 0 })
	}
	s.lifecycle = l
	return s
}

// WithWorkspace enables the init and settings routes.
func (s *Server) WithWorkspace(ws ports.Workspace) *Server {
	s.workspace = ws
	return s
}

// Lifecycle returns the lifecycle manager of the server.
func (s *Server) Lifecycle() *Lifecycle {
	return s.lifecycle
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /api/wbs/watch", s.stream)

	mux.HandleFunc("POST /api/watch/start", s.rest(s.handleWatchStart))
	mux.HandleFunc("POST /api/watch/stop", s.rest(s.handleWatchStop))
	mux.HandleFunc("GET /api/watch/status", s.rest(s.handleWatchStatus))

	mux.HandleFunc("GET /api/projects", s.rest(s.handleListProjects))
	mux.HandleFunc("GET /api/projects/{id}", s.rest(s.handleGetProject))
	mux.HandleFunc("GET /api/projects/{id}/wbs", s.rest(s.handleGetWBS))
	mux.HandleFunc("PUT /api/projects/{id}/wbs", s.rest(s.handlePutWBS))

	mux.HandleFunc("GET /api/config/base-path", s.rest(s.handleGetBasePath))
	mux.HandleFunc("PUT /api/config/base-path", s.rest(s.handleSetBasePath))
	mux.HandleFunc("GET /api/config/recent-paths", s.rest(s.handleRecentPaths))

	if s.workspace != nil {
		mux.HandleFunc("GET /api/init", s.rest(s.handleInitStatus))
		mux.HandleFunc("POST /api/init", s.rest(s.handleInit))
		mux.HandleFunc("GET /api/settings/{type}", s.rest(s.handleGetSettings))
	}

	mux.HandleFunc("GET /api/server/status", s.rest(s.handleServerStatus))
	mux.HandleFunc("POST /api/server/shutdown", s.rest(s.handleShutdown))

	return s.touch(mux)
}

// ListenAndServe listens on addr and serves until ctx is done or shutdown is requested.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", addr)
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done or shutdown is requested, then shuts
// down gracefully. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info(fmt.Sprintf("listening on http://%s", lis.Addr()))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", lis.Addr().String())
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-s.lifecycle.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
		return nil
	})

	return g.Wait()
}

// rest wraps a handler with the JSON error and security header middleware.
func (s *Server) rest(next apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", cacheControlNoStore)

		if apiErr := next(w, r); apiErr != nil {
			if apiErr.Status >= http.StatusInternalServerError {
				s.logger.Error(zerr.With(zerr.New(apiErr.Message), "route", r.Pattern))
			}
			writeJSON(w, apiErr.Status, errorResponse{Error: apiErr.Message})
		}
	}
}

func (s *Server) touch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lifecycle.Touch()
		next.ServeHTTP(w, r)
	})
}
