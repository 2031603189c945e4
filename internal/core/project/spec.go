package project

import (
	"encoding/json"

	"github.com/kickstart-dev/kickstart/pkg/models"
)

// Spec is the fully resolved build plan for one project. It is produced by
// a Resolver, owned by the caller and passed to Builder.Build; the builder
// keeps no reference to it after Build returns.
type Spec struct {
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Type     models.ProjectType `json:"type"`
	// Template names the registry document the plan was resolved from.
	Template string `json:"template"`

	// Dependencies and DevDependencies mirror the template's top-level
	// lists. The builder installs InstallSteps only.
	Dependencies    []string `json:"dependencies"`
	DevDependencies []string `json:"devDependencies"`

	InitSteps      []Step            `json:"initSteps"`
	PostInitSteps  []Step            `json:"postInitSteps"`
	InstallSteps   InstallSteps      `json:"installSteps"`
	Folders        []string          `json:"folders"`
	Files          []File            `json:"files"`
	Scripts        map[string]string `json:"scripts"`
	VSCodeSettings bool              `json:"vscodeSettings"`
}

// InstallSteps holds the packages passed to the package manager.
// Both lists are non-nil after resolution.
type InstallSteps struct {
	Dependencies    []string `json:"dependencies"`
	DevDependencies []string `json:"devDependencies"`
}

// File is one skeleton file. NameAndPath is relative to the project root
// and may still contain the placeholder; Content has it substituted.
type File struct {
	NameAndPath string `json:"nameAndPath"`
	Content     string `json:"content"`
}

// JSON returns the indented JSON form of the plan.
func (s *Spec) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
