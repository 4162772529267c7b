package domain

// WorkspaceLayout records which workspace directories exist below a base path.
type WorkspaceLayout struct {
	Root      bool `json:"root"`
	Settings  bool `json:"settings"`
	Templates bool `json:"templates"`
	Projects  bool `json:"projects"`
}

// InitStatus reports whether a base path is an initialized workspace.
type InitStatus struct {
	Initialized bool            `json:"initialized"`
	Status      WorkspaceLayout `json:"status"`
}

// NewInitStatus derives the initialized flag from a layout. Templates are
// optional; a workspace needs its root, settings and projects directories.
func NewInitStatus(layout WorkspaceLayout) InitStatus {
	return InitStatus{
		Initialized: layout.Root && layout.Settings && layout.Projects,
		Status:      layout,
	}
}
