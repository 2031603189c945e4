package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kickstart-dev/kickstart/internal/catalog"
	"github.com/kickstart-dev/kickstart/internal/config"
	"github.com/kickstart-dev/kickstart/internal/core/project"
	"github.com/kickstart-dev/kickstart/internal/defs"
	"github.com/kickstart-dev/kickstart/internal/shell"
	"github.com/kickstart-dev/kickstart/internal/template"
	"github.com/kickstart-dev/kickstart/internal/ui"
	"github.com/kickstart-dev/kickstart/pkg/version"
)

// Dependencies holds all shared service instances for CLI commands.
// This is the composition root that wires together all domain services.
type Dependencies struct {
	Config         *config.Manager
	Settings       *config.Settings
	Templates      template.Registry
	TemplateSource string
	Executor       shell.Executor
	Catalog        *catalog.Store
	Theme          *ui.Theme
	Headless       *ui.HeadlessManager
	Logger         *slog.Logger
}

// depsOptions carries the persistent flags that affect wiring.
type depsOptions struct {
	configDir string
	verbose   bool
	noColor   bool
	logOut    io.Writer
}

// deps is the package-level dependency container, initialized on first
// command execution.
var deps *Dependencies

// InitDependencies creates and wires all service dependencies.
func InitDependencies(opts depsOptions) error {
	dir := opts.configDir
	if dir == "" {
		dir = config.DefaultDir()
	}
	if opts.logOut == nil {
		opts.logOut = os.Stderr
	}

	bootLogger := newLogger(opts.logOut, levelFor(config.DefaultLogLevel, opts.verbose), config.DefaultLogFormat)
	cfg := config.NewManager(dir, bootLogger, config.WithEnvFile(defs.DotEnv))
	settings, err := cfg.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger := newLogger(opts.logOut, levelFor(settings.LogLevel, opts.verbose), settings.LogFormat)
	noColor := opts.noColor || settings.NoColor
	if noColor {
		applyNoColor()
	}

	templates, source := template.Open(settings.TemplatesDir, version.GetVersion(), logger)
	logger.Debug("template registry opened", "source", source)

	deps = &Dependencies{
		Config:         cfg,
		Settings:       settings,
		Templates:      templates,
		TemplateSource: source,
		Executor:       shell.NewExecutor(shell.InheritedStreams(), logger),
		Catalog:        catalog.NewStore(settings.ProjectsFile, logger),
		Theme:          ui.NewTheme(noColor),
		Headless:       ui.NewHeadlessManager(),
		Logger:         logger,
	}
	return nil
}

// GetDeps returns the current dependency container.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the dependency container. Used by tests.
func SetDeps(d *Dependencies) {
	deps = d
}

// NewResolver returns a resolver over the configured template registry.
func (d *Dependencies) NewResolver() project.Resolver {
	return project.NewResolver(d.Templates, d.Logger)
}

// NewBuilder returns a builder configured from settings.
func (d *Dependencies) NewBuilder(opts ...project.BuilderOption) project.Builder {
	base := []project.BuilderOption{
		project.WithPackageManager(d.Settings.PackageManager),
		project.WithEditor(d.Settings.Editor),
	}
	return project.NewBuilder(d.Executor, d.Templates, d.Logger, append(base, opts...)...)
}

// levelFor maps a log_level setting to a slog level; verbose forces debug.
func levelFor(level string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
