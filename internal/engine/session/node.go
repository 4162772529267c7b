package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/orchay/internal/adapters/logger"
	"go.trai.ch/orchay/internal/adapters/sink"
	"go.trai.ch/orchay/internal/adapters/telemetry"
	"go.trai.ch/orchay/internal/adapters/watcher"
	"go.trai.ch/orchay/internal/core/ports"
)

// NodeID is the unique identifier for the watch session Graft node.
const NodeID graft.ID = "engine.session"

func init() {
	graft.Register(graft.Node[*Supervisor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{watcher.NodeID, sink.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Supervisor, error) {
			factory, err := graft.Dep[ports.SourceFactory](ctx)
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
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewSupervisor(factory, hub, log, tracer), nil
		},
	})
}
