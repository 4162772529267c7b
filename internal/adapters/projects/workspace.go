package projects

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace.
// Like Store, it reads through a FileSystem and creates directories on the local disk.
type Workspace struct {
	fs FileSystem
}

// NewWorkspace creates a Workspace reading through fsys.
func NewWorkspace(fsys FileSystem) *Workspace {
	return &Workspace{fs: fsys}
}

// Status implements ports.Workspace. A missing base path is reported as an
// uninitialized workspace rather than an error.
func (w *Workspace) Status(base string) (domain.InitStatus, error) {
	top, err := w.fs.SubDirs(base)
	if err != nil {
		return domain.InitStatus{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", base)
	}
	if !slices.Contains(top, domain.OrchayDirName) {
		return domain.NewInitStatus(domain.WorkspaceLayout{}), nil
	}

	root := domain.OrchayPath(base)
	dirs, err := w.fs.SubDirs(root)
	if err != nil {
		return domain.InitStatus{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", root)
	}

	return domain.NewInitStatus(domain.WorkspaceLayout{
		Root:      true,
		Settings:  slices.Contains(dirs, domain.SettingsDirName),
		Templates: slices.Contains(dirs, domain.TemplatesDirName),
		Projects:  slices.Contains(dirs, domain.ProjectsDirName),
	}), nil
}

// Init implements ports.Workspace. Existing directories are left untouched.
func (w *Workspace) Init(base string) (domain.InitStatus, error) {
	root := domain.OrchayPath(base)
	for _, dir := range []string{
		root,
		filepath.Join(root, domain.SettingsDirName),
		filepath.Join(root, domain.TemplatesDirName),
		filepath.Join(root, domain.ProjectsDirName),
	} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return domain.InitStatus{}, zerr.With(zerr.Wrap(err, domain.ErrInitFailed.Error()), "path", dir)
		}
	}
	return w.Status(base)
}

// Settings implements ports.Workspace.
func (w *Workspace) Settings(base, settingsType string) (json.RawMessage, error) {
	if !domain.ValidateSettingsType(settingsType) {
		return nil, zerr.With(domain.ErrInvalidSettingsType, "type", settingsType)
	}

	path := domain.SettingsPath(base, settingsType)
	content, err := w.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrSettingsNotFound, "type", settingsType)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var doc json.RawMessage
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}
	return doc, nil
}
