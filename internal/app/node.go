package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/orchay/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/orchay/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/orchay/internal/adapters/projects" //nolint:depguard // Wired in app layer
	"go.trai.ch/orchay/internal/adapters/server"   //nolint:depguard // Wired in app layer
	"go.trai.ch/orchay/internal/adapters/sink"     //nolint:depguard // Wired in app layer
	"go.trai.ch/orchay/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/orchay/internal/engine/session"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the wired application and the adapters the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			watcher.NodeID,
			config.NodeID,
			projects.NodeID,
			projects.WorkspaceNodeID,
			logger.NodeID,
			session.NodeID,
			server.NodeID,
			sink.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			factory, err := graft.Dep[ports.SourceFactory](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}

			projectStore, err := graft.Dep[ports.ProjectStore](ctx)
			if err != nil {
				return nil, err
			}

			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			supervisor, err := graft.Dep[*session.Supervisor](ctx)
			if err != nil {
				return nil, err
			}

			srv, err := graft.Dep[*server.Server](ctx)
			if err != nil {
				return nil, err
			}

			hub, err := graft.Dep[*sink.Hub](ctx)
			if err != nil {
				return nil, err
			}

			return New(factory, store, projectStore, log).
				WithWorkspace(workspace).
				WithServer(supervisor, srv, hub), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
