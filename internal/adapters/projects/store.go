// Package projects reads and writes the wbs.yaml files of the projects below a base path.
package projects

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectStore = (*Store)(nil)

// Store implements ports.ProjectStore.
// Reads go through a FileSystem; writes always hit the local disk.
type Store struct {
	fs FileSystem
	// mu serializes writes so that revision checks and renames do not interleave.
	mu sync.Mutex
}

// NewStore creates a Store reading through fsys.
func NewStore(fsys FileSystem) *Store {
	return &Store{fs: fsys}
}

// Revision returns the revision of a wbs.yaml content.
func Revision(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// List implements ports.ProjectStore. Projects whose wbs.yaml is missing or
// cannot be parsed are skipped. An empty status matches every project.
func (s *Store) List(base, status string) ([]domain.ProjectListItem, error) {
	root := domain.ProjectsPath(base)
	dirs, err := s.fs.SubDirs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWBSReadFailed.Error()), "path", root)
	}

	items := make([]domain.ProjectListItem, 0, len(dirs))
	for _, dir := range dirs {
		doc, err := s.readDocument(filepath.Join(root, dir, domain.WBSFileName))
		if err != nil {
			continue
		}

		projectStatus := doc.Project.Status
		if projectStatus == "" {
			projectStatus = domain.DefaultProjectStatus
		}
		if status != "" && projectStatus != status {
			continue
		}

		items = append(items, domain.ProjectListItem{
			ID:        doc.Project.ID,
			Name:      doc.Project.Name,
			Path:      dir,
			Status:    projectStatus,
			WBSDepth:  doc.Depth(),
			CreatedAt: doc.Project.CreatedAt,
		})
	}

	// Newest first; projects without a creation date go last.
	slices.SortStableFunc(items, func(a, b domain.ProjectListItem) int {
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})

	return items, nil
}

// Get implements ports.ProjectStore.
func (s *Store) Get(base, projectID string) (*domain.ProjectConfig, error) {
	if !domain.ValidateProjectID(projectID) {
		return nil, zerr.With(domain.ErrInvalidProjectID, "project", projectID)
	}

	doc, err := s.readDocument(domain.WBSPath(base, projectID))
	if err != nil {
		return nil, zerr.With(err, "project", projectID)
	}
	return &doc.Project, nil
}

// ReadWBS implements ports.ProjectStore.
func (s *Store) ReadWBS(base, projectID string) ([]byte, string, error) {
	if !domain.ValidateProjectID(projectID) {
		return nil, "", zerr.With(domain.ErrInvalidProjectID, "project", projectID)
	}

	content, err := s.read(domain.WBSPath(base, projectID))
	if err != nil {
		return nil, "", zerr.With(err, "project", projectID)
	}
	return content, Revision(content), nil
}

// WriteWBS implements ports.ProjectStore. The project directory is created
// when missing and the file is replaced atomically.
func (s *Store) WriteWBS(base, projectID string, content []byte, ifRevision string) (string, error) {
	if !domain.ValidateProjectID(projectID) {
		return "", zerr.With(domain.ErrInvalidProjectID, "project", projectID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := domain.WBSPath(base, projectID)

	if ifRevision != "" {
		current, err := s.read(path)
		if err != nil {
			return "", zerr.With(err, "project", projectID)
		}
		if rev := Revision(current); rev != ifRevision {
			err := zerr.With(domain.ErrRevisionMismatch, "project", projectID)
			return "", zerr.With(err, "current", rev)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWBSWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".wbs-*.yaml")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWBSWriteFailed.Error()), "path", dir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return "", zerr.With(zerr.Wrap(err, domain.ErrWBSWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWBSWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWBSWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWBSWriteFailed.Error()), "path", path)
	}

	return Revision(content), nil
}

func (s *Store) read(path string) ([]byte, error) {
	content, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrProjectNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWBSReadFailed.Error()), "path", path)
	}
	return content, nil
}

func (s *Store) readDocument(path string) (*domain.WBSDocument, error) {
	content, err := s.read(path)
	if err != nil {
		return nil, err
	}

	var doc domain.WBSDocument
	dec := yaml.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWBSParseFailed.Error()), "path", path)
	}
	return &doc, nil
}
