// Package project implements the project-setup engine behind "kickstart
// create": the resolver turns a project-type template into a concrete build
// plan for one named project, and the builder executes that plan's phases
// against the target directory.
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kickstart-dev/kickstart/pkg/models"
)

// Sentinel errors for the project package.
var (
	// ErrTemplateNotFound indicates no template is registered for the project type.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateMalformed indicates the registered template failed to parse or validate.
	ErrTemplateMalformed = errors.New("template malformed")

	// ErrTemplateIncompatible indicates the template requires a newer kickstart.
	ErrTemplateIncompatible = errors.New("template incompatible")

	// ErrInvalidName indicates the project name cannot be used.
	ErrInvalidName = errors.New("invalid project name")

	// ErrDirectoryCreation indicates the project root could not be created.
	ErrDirectoryCreation = errors.New("directory creation failed")

	// ErrInitStep indicates a single init or post-init step failed.
	ErrInitStep = errors.New("init step failed")

	// ErrDependencyInstall indicates a package manager install invocation failed.
	ErrDependencyInstall = errors.New("dependency install failed")

	// ErrFolderCreation indicates a skeleton folder could not be created.
	ErrFolderCreation = errors.New("folder creation failed")

	// ErrFileCreation indicates a skeleton file could not be written.
	ErrFileCreation = errors.New("file creation failed")

	// ErrConfigCopy indicates a premade configuration file could not be copied.
	ErrConfigCopy = errors.New("config copy failed")

	// ErrManifestUpdate indicates package.json scripts could not be merged.
	ErrManifestUpdate = errors.New("manifest update failed")

	// ErrEditorLaunch indicates the editor command failed.
	ErrEditorLaunch = errors.New("editor launch failed")
)

// PhaseError is returned by Build when a fatal phase fails. The remaining
// phases did not run.
type PhaseError struct {
	Phase Phase
	Err   error
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *PhaseError) Unwrap() error {
	return e.Err
}

// ResolveError is returned by Resolve when the template for a project type
// cannot be used. Kind is one of the ErrTemplate* sentinels.
type ResolveError struct {
	Type        models.ProjectType
	Suggestions []string
	Kind        error
	Cause       error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	var b strings.Builder
	if errors.Is(e.Kind, ErrTemplateNotFound) {
		fmt.Fprintf(&b, "configuration for project type %q not found", e.Type)
	} else {
		fmt.Fprintf(&b, "project type %q: %v", e.Type, e.Cause)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

// Unwrap exposes both the sentinel kind and the underlying cause.
func (e *ResolveError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}
