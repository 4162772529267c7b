package projects

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/orchay/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the project store Graft node.
	NodeID graft.ID = "adapter.projects"
	// WorkspaceNodeID is the unique identifier for the workspace Graft node.
	WorkspaceNodeID graft.ID = "adapter.workspace"
)

func init() {
	graft.Register(graft.Node[ports.ProjectStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectStore, error) {
			return NewStore(NewOSFS()), nil
		},
	})

	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Workspace, error) {
			return NewWorkspace(NewOSFS()), nil
		},
	})
}
