package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
)

// NodeID is the unique identifier for the configuration store Graft node.
const NodeID graft.ID = "adapter.config_store"

// PathEnv overrides the location of the configuration file.
const PathEnv = "ORCHAY_CONFIG"

// DefaultPath returns the configuration file location, honouring PathEnv.
func DefaultPath() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return domain.DefaultConfigPath()
}

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigStore, error) {
			return NewStore(DefaultPath()), nil
		},
	})
}
