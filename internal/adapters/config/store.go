// Package config persists user settings such as the base path to watch.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigStore = (*Store)(nil)

// Store implements ports.ConfigStore on a YAML file.
type Store struct {
	path    string
	homeDir func() (string, error)
	mu      sync.Mutex
}

// NewStore creates a Store backed by the file at path. The file is created on
// the first write.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		homeDir: os.UserHomeDir,
	}
}

// WithHomeDir replaces the lookup of the default base path.
// This is primarily used for testing.
func (s *Store) WithHomeDir(fn func() (string, error)) *Store {
	s.homeDir = fn
	return s
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// BasePath implements ports.ConfigStore.
func (s *Store) BasePath() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return "", err
	}
	if settings.BasePath != "" {
		return settings.BasePath, nil
	}

	home, err := s.homeDir()
	if err != nil || home == "" {
		return ".", nil
	}
	return home, nil
}

// SetBasePath implements ports.ConfigStore.
func (s *Store) SetBasePath(path string) (*domain.BasePathChange, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBasePathNotFound.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrBasePathNotFound, "path", abs)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBasePathNotFound.Error()), "path", abs)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrBasePathNotDir, "path", abs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return nil, err
	}

	change := &domain.BasePathChange{
		Previous: settings.BasePath,
		Current:  abs,
	}

	settings.BasePath = abs
	settings.remember(abs)

	if err := s.save(settings); err != nil {
		return nil, err
	}
	return change, nil
}

// RecentPaths implements ports.ConfigStore.
func (s *Store) RecentPaths() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return nil, err
	}
	if settings.RecentPaths == nil {
		return []string{}, nil
	}
	return settings.RecentPaths, nil
}

// load reads the settings file. A missing file yields empty settings.
func (s *Store) load() (*Settings, error) {
	// #nosec G304 -- path is chosen by the user or derived from the config dir
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", s.path)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", s.path)
	}
	return &settings, nil
}

// save writes the settings file atomically.
func (s *Store) save(settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", dir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", s.path)
	}
	if err := os.Chmod(tmpName, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", s.path)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", s.path)
	}
	return nil
}
