package config

// MaxRecentPaths is the number of base paths remembered in the recent list.
const MaxRecentPaths = 5

// Settings represents the structure of the user configuration file.
type Settings struct {
	BasePath    string   `yaml:"base_path,omitempty"`
	RecentPaths []string `yaml:"recent_paths,omitempty"`
}

// remember moves path to the front of the recent list, dropping duplicates and
// anything beyond MaxRecentPaths.
func (s *Settings) remember(path string) {
	recent := make([]string, 0, MaxRecentPaths)
	recent = append(recent, path)
	for _, p := range s.RecentPaths {
		if p == path {
			continue
		}
		if len(recent) == MaxRecentPaths {
			break
		}
		recent = append(recent, p)
	}
	s.RecentPaths = recent
}
