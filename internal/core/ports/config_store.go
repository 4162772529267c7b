package ports

import "go.trai.ch/orchay/internal/core/domain"

// ConfigStore is the key-value store supplying the base path to watch.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// BasePath returns the configured base path, or the user home directory
	// when none is configured.
	BasePath() (string, error)

	// SetBasePath validates and stores a new base path and records it as the
	// most recent path.
	SetBasePath(path string) (*domain.BasePathChange, error)

	// RecentPaths returns the most recently used base paths, newest first.
	RecentPaths() ([]string, error)
}
