package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// OrchayDirName is the name of the workspace metadata directory inside a base path.
	OrchayDirName = ".orchay"

	// ProjectsDirName is the name of the directory holding one subdirectory per project.
	ProjectsDirName = "projects"

	// SettingsDirName is the name of the directory holding the JSON settings files.
	SettingsDirName = "settings"

	// TemplatesDirName is the name of the directory holding project templates.
	TemplatesDirName = "templates"

	// SettingsFileExt is the extension of a settings file.
	SettingsFileExt = ".json"

	// WBSFileName is the name of the work breakdown structure file of a project.
	WBSFileName = "wbs.yaml"

	// AppDirName is the name of the per-user application directory.
	AppDirName = "orchay"

	// ConfigFileName is the name of the user configuration file.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// OrchayPath returns the workspace metadata directory of a base path.
func OrchayPath(base string) string {
	return filepath.Join(base, OrchayDirName)
}

// SettingsPath returns the path of the settings file of the given type.
func SettingsPath(base, settingsType string) string {
	return filepath.Join(OrchayPath(base), SettingsDirName, settingsType+SettingsFileExt)
}

// ProjectsPath returns the watch root for a base path.
// It joins base, .orchay and projects.
func ProjectsPath(base string) string {
	return filepath.Join(base, OrchayDirName, ProjectsDirName)
}

// ProjectPath returns the directory of a single project.
func ProjectPath(base, projectID string) string {
	return filepath.Join(ProjectsPath(base), projectID)
}

// WBSPath returns the path of a project's wbs.yaml.
func WBSPath(base, projectID string) string {
	return filepath.Join(ProjectPath(base, projectID), WBSFileName)
}

// DefaultConfigPath returns the path of the user configuration file.
// It honours XDG_CONFIG_HOME through os.UserConfigDir and falls back to the
// working directory when no config directory can be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(OrchayDirName, ConfigFileName)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName)
}

// ValidateProjectID reports whether id names exactly one directory below the projects path.
func ValidateProjectID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && filepath.Base(id) == id
}

// ValidateSettingsType reports whether name is a settings type: ASCII
// letters, digits, '-' and '_' only.
func ValidateSettingsType(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
