package config

import (
	"os"
	"path/filepath"

	"github.com/kickstart-dev/kickstart/internal/defs"
)

// Default values for settings without a configured value.
const (
	DefaultPackageManager = "npm"
	DefaultEditor         = "code"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultRecordProjects = true
	DefaultNoColor        = false
)

// Valid enum values.
var (
	ValidPackageManagers = []string{"npm", "pnpm", "yarn", "bun"}
	ValidLogLevels       = []string{"debug", "info", "warn", "error"}
	ValidLogFormats      = []string{"text", "json"}
)

// EnvPrefix prefixes environment variable overrides (KICKSTART_EDITOR, ...).
const EnvPrefix = "KICKSTART"

// EnvHome overrides the kickstart home directory.
const EnvHome = "KICKSTART_HOME"

// DefaultDir returns the kickstart home directory: $KICKSTART_HOME when
// set, otherwise ~/.kickstart.
func DefaultDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return filepath.Clean(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defs.HomeDirName
	}
	return filepath.Join(home, defs.HomeDirName)
}

// NewDefaultSettings returns the settings used when nothing is configured,
// with paths rooted at dir.
func NewDefaultSettings(dir string) *Settings {
	return &Settings{
		TemplatesDir:   filepath.Join(dir, defs.TemplatesSubdir),
		PackageManager: DefaultPackageManager,
		Editor:         DefaultEditor,
		ProjectsFile:   filepath.Join(dir, defs.ProjectsJSON),
		RecordProjects: DefaultRecordProjects,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		NoColor:        DefaultNoColor,
	}
}

// Keys returns every setting key in display order.
func Keys() []string {
	return []string{
		KeyTemplatesDir,
		KeyPackageManager,
		KeyEditor,
		KeyProjectsFile,
		KeyRecordProjects,
		KeyLogLevel,
		KeyLogFormat,
		KeyNoColor,
	}
}

// boolKeys lists the keys holding booleans.
var boolKeys = map[string]bool{
	KeyRecordProjects: true,
	KeyNoColor:        true,
}

func defaultValues(dir string) map[string]any {
	d := NewDefaultSettings(dir)
	return map[string]any{
		KeyTemplatesDir:   d.TemplatesDir,
		KeyPackageManager: d.PackageManager,
		KeyEditor:         d.Editor,
		KeyProjectsFile:   d.ProjectsFile,
		KeyRecordProjects: d.RecordProjects,
		KeyLogLevel:       d.LogLevel,
		KeyLogFormat:      d.LogFormat,
		KeyNoColor:        d.NoColor,
	}
}
