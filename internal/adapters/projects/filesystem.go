package projects

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the read side of a project tree.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// SubDirs returns the names of the directories directly below dir.
	// A missing dir yields no names and no error.
	SubDirs(dir string) ([]string, error)
}

// OSFS reads the project tree from disk.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is built from the base path and a validated project id
	return os.ReadFile(path)
}

// SubDirs returns the names of the directories directly below dir.
func (o *OSFS) SubDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	return dirNames(entries, err)
}

// MapFSAdapter mounts an fs.FS such as fstest.MapFS at Root.
type MapFSAdapter struct {
	FS   fs.FS
	Root string
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.rel(path))
}

// SubDirs returns the names of the directories directly below dir.
func (m *MapFSAdapter) SubDirs(dir string) ([]string, error) {
	entries, err := fs.ReadDir(m.FS, m.rel(dir))
	return dirNames(entries, err)
}

// rel maps an absolute path below Root to an fs.FS path. Paths outside Root
// are passed through unchanged so lookups fail with fs.ErrNotExist.
func (m *MapFSAdapter) rel(path string) string {
	r, err := filepath.Rel(m.Root, path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(r)
}

func dirNames(entries []fs.DirEntry, err error) ([]string, error) {
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
