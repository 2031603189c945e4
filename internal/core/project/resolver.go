package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kickstart-dev/kickstart/internal/template"
	"github.com/kickstart-dev/kickstart/pkg/models"
)

// Resolver turns a project type and name into a build plan.
type Resolver interface {
	// Resolve loads the template for typ and returns the plan for a project
	// called name under basePath. An empty basePath means the current
	// working directory. Resolve never touches the filesystem beyond
	// reading the template.
	Resolve(ctx context.Context, name string, typ models.ProjectType, basePath string) (*Spec, error)
}

// TemplateSource is the part of template.Registry the resolver needs.
type TemplateSource interface {
	Load(typ string) (*template.Document, error)
	Suggest(typ string) []string
}

// templateResolver is the Resolver implementation.
type templateResolver struct {
	templates TemplateSource
	logger    *slog.Logger
}

// NewResolver creates a Resolver backed by templates.
// If logger is nil, a no-op logger is used.
func NewResolver(templates TemplateSource, logger *slog.Logger) Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &templateResolver{templates: templates, logger: logger}
}

// Resolve implements Resolver.
func (r *templateResolver) Resolve(ctx context.Context, name string, typ models.ProjectType, basePath string) (*Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	typ = models.ParseProjectType(string(typ))

	doc, err := r.templates.Load(string(typ))
	if err != nil {
		return nil, r.loadError(typ, err)
	}

	location, err := resolveLocation(basePath, name)
	if err != nil {
		return nil, err
	}

	spec := &Spec{
		Name:            name,
		Location:        location,
		Type:            typ,
		Template:        string(typ),
		Dependencies:    cloneOrEmpty(doc.Dependencies),
		DevDependencies: cloneOrEmpty(doc.DevDependencies),
		InitSteps:       ParseSteps(doc.InitSteps, name),
		PostInitSteps:   ParseSteps(doc.PostInitSteps, name),
		InstallSteps:    InstallSteps{Dependencies: []string{}, DevDependencies: []string{}},
		Folders:         cloneOrEmpty(doc.Folders),
		Files:           make([]File, 0, len(doc.Files)),
		Scripts:         make(map[string]string, len(doc.Scripts)),
		VSCodeSettings:  doc.VSCodeSettings,
	}
	if doc.InstallSteps != nil {
		spec.InstallSteps.Dependencies = cloneOrEmpty(doc.InstallSteps.Dependencies)
		spec.InstallSteps.DevDependencies = cloneOrEmpty(doc.InstallSteps.DevDependencies)
	}
	for _, f := range doc.Files {
		spec.Files = append(spec.Files, File{
			NameAndPath: f.NameAndPath,
			Content:     ReplacePlaceholders(f.Content, name),
		})
	}
	maps.Copy(spec.Scripts, doc.Scripts)

	r.logger.Debug("project resolved",
		"name", spec.Name,
		"type", spec.Type,
		"location", spec.Location,
		"init_steps", len(spec.InitSteps),
		"files", len(spec.Files),
	)
	return spec, nil
}

// loadError maps a registry failure onto a ResolveError.
func (r *templateResolver) loadError(typ models.ProjectType, err error) error {
	re := &ResolveError{Type: typ, Cause: err}
	switch {
	case errors.Is(err, template.ErrNotFound):
		re.Kind = ErrTemplateNotFound
		re.Suggestions = r.templates.Suggest(string(typ))
	case errors.Is(err, template.ErrIncompatible):
		re.Kind = ErrTemplateIncompatible
	default:
		re.Kind = ErrTemplateMalformed
	}
	r.logger.Debug("template lookup failed", "type", typ, "error", err)
	return re
}

// normalizeName trims and NFC-normalizes a project name.
func normalizeName(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return "", fmt.Errorf("%w: contains NUL byte", ErrInvalidName)
	case strings.Contains(name, Placeholder):
		return "", fmt.Errorf("%w: contains %s", ErrInvalidName, Placeholder)
	}
	return name, nil
}

// resolveLocation joins name onto basePath and makes the result absolute.
// An absolute name replaces basePath.
func resolveLocation(basePath, name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	if basePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		basePath = wd
	}
	location, err := filepath.Abs(filepath.Join(basePath, name))
	if err != nil {
		return "", fmt.Errorf("resolve location: %w", err)
	}
	return location, nil
}

func cloneOrEmpty(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return slices.Clone(s)
}
