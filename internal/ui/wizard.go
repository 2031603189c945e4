package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// CreateAnswers holds the inputs of "kickstart create".
type CreateAnswers struct {
	Type string
	Name string
}

// CreateWizard asks for whatever create inputs were not given as arguments.
type CreateWizard struct {
	theme    *Theme
	headless *HeadlessManager
	types    []string
}

// NewCreateWizard creates a wizard offering types in its type selector.
func NewCreateWizard(theme *Theme, hm *HeadlessManager, types []string) *CreateWizard {
	if theme == nil {
		theme = NewTheme(false)
	}
	return &CreateWizard{theme: theme, headless: hm, types: types}
}

// Run completes partial. Fields already set are kept. In headless mode the
// stored defaults fill the gaps; a gap with no default is an error.
func (w *CreateWizard) Run(ctx context.Context, partial CreateAnswers) (*CreateAnswers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := partial
	result.Type = strings.TrimSpace(result.Type)
	result.Name = strings.TrimSpace(result.Name)

	if w.headless.IsHeadless() {
		return w.runHeadless(result)
	}
	return w.runInteractive(ctx, result)
}

func (w *CreateWizard) runHeadless(result CreateAnswers) (*CreateAnswers, error) {
	if result.Type == "" {
		v, ok := w.headless.GetDefault(DefaultKeyType)
		if !ok {
			return nil, fmt.Errorf("%w: project type", ErrHeadlessNoDefaults)
		}
		result.Type = v
	}
	if result.Name == "" {
		v, ok := w.headless.GetDefault(DefaultKeyName)
		if !ok {
			return nil, fmt.Errorf("%w: project name", ErrHeadlessNoDefaults)
		}
		result.Name = v
	}
	return &result, nil
}

// runInteractive runs each missing question as its own form, the way the
// init wizard does, so a long option list cannot scroll the name input away.
func (w *CreateWizard) runInteractive(ctx context.Context, result CreateAnswers) (*CreateAnswers, error) {
	var fields []huh.Field
	if result.Type == "" {
		fields = append(fields, w.typeField(&result.Type))
	}
	if result.Name == "" {
		fields = append(fields, nameField(&result.Name))
	}

	for _, field := range fields {
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(w.theme.huhTheme()).
			WithAccessible(false)
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	result.Name = strings.TrimSpace(result.Name)
	return &result, nil
}

func (w *CreateWizard) typeField(value *string) huh.Field {
	opts := make([]huh.Option[string], 0, len(w.types))
	for _, t := range w.types {
		opts = append(opts, huh.NewOption(t, t))
	}
	return huh.NewSelect[string]().
		Title("Project type").
		Description("Template used to scaffold the project").
		Options(opts...).
		Value(value)
}

func nameField(value *string) huh.Field {
	return huh.NewInput().
		Title("Project name").
		Description("Directory created under the target path").
		Placeholder("my-project").
		Value(value).
		Validate(ValidateProjectName)
}

// ValidateProjectName rejects names that cannot be used as a directory.
func ValidateProjectName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return errors.New("project name is required")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a valid project name", name)
	case strings.ContainsAny(name, "\x00"):
		return errors.New("project name contains a NUL byte")
	}
	return nil
}
