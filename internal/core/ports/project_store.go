package ports

import "go.trai.ch/orchay/internal/core/domain"

// ProjectStore reads and writes the wbs.yaml files the watcher observes.
//
//go:generate mockgen -source=project_store.go -destination=mocks/mock_project_store.go -package=mocks
type ProjectStore interface {
	// List returns the projects under base, optionally filtered by status.
	List(base, status string) ([]domain.ProjectListItem, error)

	// Get returns the project section of a project's wbs.yaml.
	Get(base, projectID string) (*domain.ProjectConfig, error)

	// ReadWBS returns the raw wbs.yaml content and its revision.
	ReadWBS(base, projectID string) (content []byte, revision string, err error)

	// WriteWBS replaces the wbs.yaml content. A non-empty ifRevision must match
	// the current revision. It returns the new revision.
	WriteWBS(base, projectID string, content []byte, ifRevision string) (string, error)
}
