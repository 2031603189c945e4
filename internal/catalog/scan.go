package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Scanner turns directory listings into catalog entries.
type Scanner struct {
	// DetectLibraries fills Project.Libraries from each package.json.
	DetectLibraries bool
	// IncludeHidden keeps subdirectories whose name starts with a dot.
	IncludeHidden bool

	logger *slog.Logger
}

// NewScanner creates a Scanner. If logger is nil, a no-op logger is used.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{logger: logger}
}

// Scan returns one entry per subdirectory of each base directory. Base
// directories are read concurrently; the result keeps the order of
// baseDirs and, within each, the sorted order of the directory listing.
func (s *Scanner) Scan(ctx context.Context, baseDirs ...string) ([]Project, error) {
	perDir := make([][]Project, len(baseDirs))
	g, gctx := errgroup.WithContext(ctx)

	for i, dir := range baseDirs {
		i, dir := i, dir
		g.Go(func() error {
			projects, err := s.scanDir(gctx, dir)
			if err != nil {
				return err
			}
			perDir[i] = projects
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Project
	for _, projects := range perDir {
		out = append(out, projects...)
	}
	return out, nil
}

func (s *Scanner) scanDir(ctx context.Context, dir string) ([]Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", abs, err)
	}

	var projects []Project
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() || (!s.IncludeHidden && strings.HasPrefix(e.Name(), ".")) {
			continue
		}

		p := NewProject(e.Name(), filepath.Join(abs, e.Name()))
		if s.DetectLibraries {
			libs, err := DetectLibraries(p.RootPath)
			if err != nil {
				s.logger.Warn("cannot detect libraries", "path", p.RootPath, "error", err)
			} else if len(libs) > 0 {
				p.Libraries = libs
			}
		}
		projects = append(projects, p)
	}
	s.logger.Debug("scanned directory", "path", abs, "projects", len(projects))
	return projects, nil
}
