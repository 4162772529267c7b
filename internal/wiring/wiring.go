// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/orchay/internal/adapters/config"
	_ "go.trai.ch/orchay/internal/adapters/logger"
	_ "go.trai.ch/orchay/internal/adapters/projects"
	_ "go.trai.ch/orchay/internal/adapters/server"
	_ "go.trai.ch/orchay/internal/adapters/sink"
	_ "go.trai.ch/orchay/internal/adapters/telemetry"
	_ "go.trai.ch/orchay/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/orchay/internal/app"
	_ "go.trai.ch/orchay/internal/engine/session"
)
