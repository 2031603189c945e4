package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kickstart-dev/kickstart/internal/defs"
	"github.com/kickstart-dev/kickstart/internal/manifest"
	"github.com/kickstart-dev/kickstart/internal/shell"
)

// DefaultEditor opens a directory in VS Code.
const DefaultEditor = "code"

// Builder materializes a resolved Spec on disk.
type Builder interface {
	// Build runs every phase against spec.Location. A fatal phase failure
	// is returned as *PhaseError together with the partial result.
	Build(ctx context.Context, spec *Spec) (*BuildResult, error)
}

// ConfigFiles serves the premade configuration files copied into new projects.
type ConfigFiles interface {
	HasFile(name string) bool
	CopyFile(name, dst string) error
}

// BuilderOption configures a Builder.
type BuilderOption func(*projectBuilder)

// WithPackageManager selects the package manager used by the install phase.
func WithPackageManager(pm string) BuilderOption {
	return func(b *projectBuilder) {
		if pm != "" {
			b.packageManager = pm
		}
	}
}

// WithEditor sets the command that opens the project directory.
func WithEditor(command string) BuilderOption {
	return func(b *projectBuilder) {
		if command != "" {
			b.editor = command
		}
	}
}

// WithReporter attaches a progress reporter.
func WithReporter(r Reporter) BuilderOption {
	return func(b *projectBuilder) {
		if r != nil {
			b.reporter = r
		}
	}
}

// WithoutEditor disables the editor phase regardless of the plan.
func WithoutEditor() BuilderOption {
	return func(b *projectBuilder) {
		b.noEditor = true
	}
}

// projectBuilder is the concrete Builder. It holds collaborators only; the
// plan is always an argument, so consecutive builds share no state.
type projectBuilder struct {
	mu sync.Mutex

	executor       shell.Executor
	files          ConfigFiles
	logger         *slog.Logger
	reporter       Reporter
	packageManager string
	editor         string
	noEditor       bool
}

// NewBuilder creates a Builder that runs commands through executor and
// copies premade configs from files. If logger is nil, a no-op logger is used.
func NewBuilder(executor shell.Executor, files ConfigFiles, logger *slog.Logger, opts ...BuilderOption) Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	b := &projectBuilder{
		executor:       executor,
		files:          files,
		logger:         logger,
		reporter:       NopReporter{},
		packageManager: DefaultPackageManager,
		editor:         DefaultEditor,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type phaseFunc func(ctx context.Context, spec *Spec, result *BuildResult) error

// Build implements Builder.
func (b *projectBuilder) Build(ctx context.Context, spec *Spec) (*BuildResult, error) {
	if spec == nil {
		return nil, errors.New("build: nil spec")
	}
	if spec.Location == "" {
		return nil, fmt.Errorf("%w: empty location", ErrDirectoryCreation)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.logger.Info("building project",
		"name", spec.Name,
		"type", spec.Type,
		"location", spec.Location,
		"package_manager", b.packageManager,
	)

	result := &BuildResult{Location: spec.Location}
	phases := map[Phase]phaseFunc{
		PhaseCreateRoot:    b.createRoot,
		PhaseInitSteps:     b.runInitSteps,
		PhaseInstall:       b.install,
		PhasePostInitSteps: b.runPostInitSteps,
		PhaseCreateFolders: b.createFolders,
		PhaseCreateFiles:   b.createFiles,
		PhaseCopyTemplates: b.copyTemplates,
		PhaseMergeScripts:  b.mergeScripts,
		PhaseOpenEditor:    b.openEditor,
	}

	for _, phase := range Phases() {
		if err := ctx.Err(); err != nil {
			return result, b.abort(result, phase, err)
		}
		if phase == PhaseOpenEditor && (!spec.VSCodeSettings || b.noEditor) {
			result.record(phase, true, nil)
			b.reporter.PhaseSkipped(phase)
			continue
		}

		b.reporter.PhaseStarted(phase)
		err := phases[phase](ctx, spec, result)
		result.record(phase, false, err)
		b.reporter.PhaseFinished(phase, err)
		if err == nil {
			continue
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, b.abort(result, phase, ctxErr)
		}
		if !phase.Fatal() {
			result.EditorErr = err
			result.Warnings = append(result.Warnings, err.Error())
			b.logger.Warn("editor launch failed", "editor", b.editor, "error", err)
			continue
		}
		return result, b.abort(result, phase, err)
	}

	b.logger.Info("project setup complete",
		"location", spec.Location,
		"status", result.Status(),
		"failed_steps", len(result.FailedSteps),
	)
	return result, nil
}

// abort marks result as stopped at phase. Cancellation is reported the
// same way as a fatal phase failure.
func (b *projectBuilder) abort(result *BuildResult, phase Phase, err error) error {
	result.AbortedAt = phase
	b.logger.Error("build aborted", "phase", phase, "error", err)
	return &PhaseError{Phase: phase, Err: err}
}

func (b *projectBuilder) createRoot(_ context.Context, spec *Spec, _ *BuildResult) error {
	if err := os.MkdirAll(spec.Location, defs.DirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryCreation, err)
	}
	b.logger.Info("created project folder", "path", spec.Location)
	return nil
}

func (b *projectBuilder) runInitSteps(ctx context.Context, spec *Spec, result *BuildResult) error {
	return b.runSteps(ctx, PhaseInitSteps, spec.Location, spec.InitSteps, result)
}

func (b *projectBuilder) runPostInitSteps(ctx context.Context, spec *Spec, result *BuildResult) error {
	return b.runSteps(ctx, PhasePostInitSteps, spec.Location, spec.PostInitSteps, result)
}

// runSteps executes steps with a working-directory cursor that starts at
// root. Change-directory steps only move the cursor. A failed step is
// recorded and the loop moves on. The only error returned is the context's,
// once it is done; the interrupted step is not recorded as a failure.
func (b *projectBuilder) runSteps(ctx context.Context, phase Phase, root string, steps []Step, result *BuildResult) error {
	cursor := root
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if step.Kind == StepChangeDir {
			cursor = step.next(root, cursor)
			b.logger.Info("changed directory", "phase", phase, "index", i, "dir", cursor)
			continue
		}

		b.logger.Info("running step", "phase", phase, "index", i, "command", step.Command, "dir", cursor)
		if err := b.executor.Run(ctx, cursor, step.Command); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			failure := StepFailure{
				Phase:   phase,
				Index:   i,
				Command: step.Command,
				Dir:     cursor,
				Err:     fmt.Errorf("%w: %w", ErrInitStep, err),
			}
			failure.Error = failure.Err.Error()
			result.FailedSteps = append(result.FailedSteps, failure)
			b.reporter.StepFailed(failure)
			b.logger.Warn("step failed, continuing",
				"phase", phase,
				"index", i,
				"command", step.Command,
				"exit_code", shell.ExitCode(err),
				"error", err,
			)
		}
	}
	return nil
}

func (b *projectBuilder) install(ctx context.Context, spec *Spec, result *BuildResult) error {
	deps := spec.InstallSteps
	if len(deps.Dependencies) > 0 {
		cmd := installCommand(b.packageManager, deps.Dependencies, false)
		b.logger.Info("installing dependencies", "command", cmd)
		if err := b.executor.Run(ctx, spec.Location, cmd); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDependencyInstall, cmd, err)
		}
		result.InstalledDependencies = append(result.InstalledDependencies, deps.Dependencies...)
	}
	if len(deps.DevDependencies) > 0 {
		cmd := installCommand(b.packageManager, deps.DevDependencies, true)
		b.logger.Info("installing dev dependencies", "command", cmd)
		if err := b.executor.Run(ctx, spec.Location, cmd); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDependencyInstall, cmd, err)
		}
		result.InstalledDevDependencies = append(result.InstalledDevDependencies, deps.DevDependencies...)
	}
	return nil
}

func (b *projectBuilder) createFolders(_ context.Context, spec *Spec, result *BuildResult) error {
	for _, folder := range spec.Folders {
		path, err := within(spec.Location, folder)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFolderCreation, err)
		}
		if info, err := os.Stat(path); err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%w: %s exists and is not a directory", ErrFolderCreation, folder)
			}
			b.logger.Debug("folder exists", "path", path)
			continue
		}
		if err := os.MkdirAll(path, defs.DirPerm); err != nil {
			return fmt.Errorf("%w: %w", ErrFolderCreation, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, folder)
		b.logger.Info("created folder", "path", path)
	}
	return nil
}

func (b *projectBuilder) createFiles(_ context.Context, spec *Spec, result *BuildResult) error {
	for _, f := range spec.Files {
		rel := ReplacePlaceholders(f.NameAndPath, spec.Name)
		path, err := within(spec.Location, rel)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileCreation, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
			return fmt.Errorf("%w: %w", ErrFileCreation, err)
		}

		created, err := writeNewFile(path, []byte(f.Content))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFileCreation, rel, err)
		}
		if !created {
			result.SkippedFiles = append(result.SkippedFiles, rel)
			b.logger.Debug("file exists, keeping it", "path", path)
			continue
		}
		result.CreatedFiles = append(result.CreatedFiles, rel)
		b.logger.Info("created file", "path", path)
	}
	return nil
}

// premadeConfig pairs a registry file with its destination name.
type premadeConfig struct {
	source string
	target string
}

func premadeConfigs(spec *Spec) []premadeConfig {
	typ := spec.Template
	if typ == "" {
		typ = spec.Type.String()
	}
	return []premadeConfig{
		{source: typ + ".gitignore", target: ".gitignore"},
		{source: typ + ".tsconfig.json", target: "tsconfig.json"},
		{source: typ + ".env", target: ".env"},
	}
}

func (b *projectBuilder) copyTemplates(_ context.Context, spec *Spec, result *BuildResult) error {
	if b.files == nil {
		return nil
	}
	for _, c := range premadeConfigs(spec) {
		if !b.files.HasFile(c.source) {
			msg := fmt.Sprintf("premade config %s not found", c.source)
			result.Warnings = append(result.Warnings, msg)
			b.logger.Warn(msg)
			continue
		}

		name := defs.TodoPrefix + c.target
		err := b.files.CopyFile(c.source, filepath.Join(spec.Location, name))
		switch {
		case errors.Is(err, fs.ErrExist):
			b.logger.Debug("premade config exists, keeping it", "file", name)
		case err != nil:
			return fmt.Errorf("%w: %s: %w", ErrConfigCopy, c.source, err)
		default:
			result.CopiedTemplates = append(result.CopiedTemplates, name)
			b.logger.Info("copied premade config", "source", c.source, "file", name)
		}
	}
	return nil
}

func (b *projectBuilder) mergeScripts(_ context.Context, spec *Spec, result *BuildResult) error {
	if len(spec.Scripts) == 0 {
		return nil
	}
	merged, err := manifest.MergeScripts(spec.Location, spec.Scripts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifestUpdate, err)
	}
	result.ScriptsMerged = merged
	if merged {
		b.logger.Info("merged package scripts", "count", len(spec.Scripts))
	}
	return nil
}

func (b *projectBuilder) openEditor(ctx context.Context, spec *Spec, _ *BuildResult) error {
	cmd := b.editor + " " + shell.QuotePath(spec.Location)
	b.logger.Info("opening editor", "command", cmd)
	if err := b.executor.Run(ctx, "", cmd); err != nil {
		return fmt.Errorf("%w: %w", ErrEditorLaunch, err)
	}
	return nil
}

// within joins rel onto root and rejects results outside root.
func within(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be relative", rel)
	}
	path := filepath.Join(root, rel)
	r, err := filepath.Rel(root, path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the project root", rel)
	}
	return path, nil
}

// writeNewFile creates path with data. It reports false without error when
// the file already exists.
func writeNewFile(path string, data []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}
