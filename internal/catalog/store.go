package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/kickstart-dev/kickstart/internal/defs"
)

// Store holds the catalog in memory between Load and Save.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	projects []Project
}

// NewStore creates a Store for the projects file at path.
// If logger is nil, a no-op logger is used.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{path: path, logger: logger}
}

// Path returns the projects file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the projects file. A missing file yields an empty catalog.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.mu.Lock()
		s.projects = nil
		s.mu.Unlock()
		s.logger.Debug("projects file not found, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	s.logger.Debug("projects loaded", "path", s.path, "count", len(projects))
	return nil
}

// Projects returns a copy of the catalog entries.
func (s *Store) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.projects)
}

// Add appends p unless an entry with the same root path exists. It reports
// whether p was added.
func (s *Store) Add(p Project) bool {
	p.RootPath = filepath.Clean(p.RootPath)
	if p.Tags == nil {
		p.Tags = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.projects, func(e Project) bool {
		return filepath.Clean(e.RootPath) == p.RootPath
	}) {
		return false
	}
	s.projects = append(s.projects, p)
	return true
}

// Save writes the catalog as indented JSON, replacing the file atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	projects := s.projects
	if projects == nil {
		projects = []Project{}
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".projects-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, defs.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	s.logger.Debug("projects saved", "path", s.path, "count", len(projects))
	return nil
}
