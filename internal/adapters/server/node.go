package server

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/orchay/internal/adapters/config"
	"go.trai.ch/orchay/internal/adapters/logger"
	"go.trai.ch/orchay/internal/adapters/projects"
	"go.trai.ch/orchay/internal/adapters/sink"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/orchay/internal/engine/session"
)

// NodeID is the unique identifier for the HTTP server Graft node.
const NodeID graft.ID = "adapter.server"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{session.NodeID, config.NodeID, projects.NodeID, projects.WorkspaceNodeID, sink.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Server, error) {
			supervisor, err := graft.Dep[*session.Supervisor](ctx)
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
			hub, err := graft.Dep[*sink.Hub](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(supervisor, store, projectStore, hub, log).WithWorkspace(workspace), nil
		},
	})
}
