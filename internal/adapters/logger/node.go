package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/orchay/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// FormatEnv selects the log format at startup. "json" enables JSON output;
// anything else keeps the pretty handler. --log-json forces JSON regardless.
const FormatEnv = "ORCHAY_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			l := newLogger()
			l.SetJSON(os.Getenv(FormatEnv) == "json")
			return l, nil
		},
	})
}
