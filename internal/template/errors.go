// Package template provides the registry of project templates: one document
// per project type describing init steps, dependencies, the folder and file
// skeleton, and package scripts, plus loose premade configuration files
// (.gitignore, tsconfig.json, .env) copied into new projects for review.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrNotFound indicates no template document exists for the requested type.
	ErrNotFound = errors.New("template: not found")

	// ErrMalformed indicates a template document failed to parse or validate.
	ErrMalformed = errors.New("template: malformed document")

	// ErrIncompatible indicates a template requires a newer kickstart version.
	ErrIncompatible = errors.New("template: requires a newer kickstart version")
)
