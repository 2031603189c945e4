// Package catalog maintains projects.json, the list of known project
// directories that editor project managers read. kickstart records every
// project it creates there and can seed the list from existing folders.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/kickstart-dev/kickstart/internal/manifest"
)

// ErrCorrupt indicates projects.json exists but is not a JSON array of projects.
var ErrCorrupt = errors.New("catalog: malformed projects file")

// Project is one projects.json entry.
type Project struct {
	Name      string   `json:"name"`
	RootPath  string   `json:"rootPath"`
	Tags      []string `json:"tags"`
	Favorite  bool     `json:"favorite"`
	Enabled   bool     `json:"enabled"`
	Libraries []string `json:"libraries,omitempty"`
}

// NewProject returns an enabled, non-favorite entry.
func NewProject(name, rootPath string, tags ...string) Project {
	if tags == nil {
		tags = []string{}
	}
	return Project{Name: name, RootPath: rootPath, Tags: tags, Enabled: true}
}

// DetectLibraries returns the runtime dependency names declared in the
// package.json under root, in manifest order. A project without a
// package.json has no libraries.
func DetectLibraries(root string) ([]string, error) {
	deps, err := manifest.Dependencies(root)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("detect libraries in %s: %w", root, err)
	}
	return deps, nil
}
