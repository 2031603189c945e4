// Package defs holds file names and permissions shared across kickstart packages.
package defs

import "os"

// Common file names used across the project.
const (
	// PackageJSON is the package manifest whose scripts are merged after a build.
	PackageJSON = "package.json"

	// ProjectsJSON is the known-project catalog file.
	ProjectsJSON = "projects.json"

	// ConfigYAML is the user settings file under the kickstart home directory.
	ConfigYAML = "config.yaml"

	// DotEnv is the optional environment file loaded from the working directory.
	DotEnv = ".env"
)

// Template registry naming.
const (
	// HomeDirName is the per-user kickstart directory under $HOME.
	HomeDirName = ".kickstart"

	// TemplatesSubdir holds user-provided project templates under HomeDirName.
	TemplatesSubdir = "templates"

	// ProjectDocJSON is the suffix of a JSON project template document.
	ProjectDocJSON = ".project.json"

	// ProjectDocYAML is the suffix of a YAML project template document.
	ProjectDocYAML = ".project.yaml"

	// TodoPrefix marks copied configuration files that still need review.
	TodoPrefix = "_todo-"
)

// Permissions for created directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
