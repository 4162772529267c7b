package domain

const (
	// DefaultProjectStatus is used when a project does not declare a status.
	DefaultProjectStatus = "active"

	// DefaultWBSDepth is used when neither the project nor the wbs section declares a depth.
	DefaultWBSDepth = 3
)

// ProjectConfig is the project section of a wbs.yaml file.
type ProjectConfig struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Description    string `yaml:"description,omitempty" json:"description,omitempty"`
	Version        string `yaml:"version,omitempty" json:"version,omitempty"`
	Status         string `yaml:"status,omitempty" json:"status,omitempty"`
	WBSDepth       *int   `yaml:"wbsDepth,omitempty" json:"wbsDepth,omitempty"`
	CreatedAt      string `yaml:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      string `yaml:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	ScheduledStart string `yaml:"scheduledStart,omitempty" json:"scheduledStart,omitempty"`
	ScheduledEnd   string `yaml:"scheduledEnd,omitempty" json:"scheduledEnd,omitempty"`
}

// WBSConfig is the wbs section of a wbs.yaml file.
type WBSConfig struct {
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Depth       *int   `yaml:"depth,omitempty" json:"depth,omitempty"`
	ProjectRoot string `yaml:"projectRoot,omitempty" json:"projectRoot,omitempty"`
	Strategy    string `yaml:"strategy,omitempty" json:"strategy,omitempty"`
}

// WBSDocument is the parsed top level of a wbs.yaml file.
// Work packages are kept opaque.
type WBSDocument struct {
	Project      ProjectConfig `yaml:"project"`
	WBS          *WBSConfig    `yaml:"wbs,omitempty"`
	WorkPackages any           `yaml:"workPackages,omitempty"`
}

// ProjectListItem summarises a project for listings.
type ProjectListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Status    string `json:"status"`
	WBSDepth  int    `json:"wbsDepth"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Depth resolves the effective wbs depth of a document.
func (d *WBSDocument) Depth() int {
	if d.Project.WBSDepth != nil {
		return *d.Project.WBSDepth
	}
	if d.WBS != nil && d.WBS.Depth != nil {
		return *d.WBS.Depth
	}
	return DefaultWBSDepth
}

// BasePathChange describes the outcome of changing the configured base path.
type BasePathChange struct {
	Previous string `json:"previousPath"`
	Current  string `json:"currentPath"`
}
