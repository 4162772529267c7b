package ports

import (
	"encoding/json"

	"go.trai.ch/orchay/internal/core/domain"
)

// Workspace manages the .orchay directory layout of a base path and its settings files.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Status reports which workspace directories exist below base.
	Status(base string) (domain.InitStatus, error)

	// Init creates the missing workspace directories and returns the resulting status.
	Init(base string) (domain.InitStatus, error)

	// Settings returns the JSON document of .orchay/settings/<settingsType>.json.
	Settings(base, settingsType string) (json.RawMessage, error)
}
