package models

import "strings"

// ProjectType represents the type of project to scaffold.
type ProjectType string

const (
	ProjectTypeNode     ProjectType = "node"
	ProjectTypeAngular  ProjectType = "angular"
	ProjectTypeElectron ProjectType = "electron"
)

// BuiltinProjectTypes returns the project types whose templates ship with the binary.
func BuiltinProjectTypes() []ProjectType {
	return []ProjectType{ProjectTypeNode, ProjectTypeAngular, ProjectTypeElectron}
}

// ParseProjectType normalizes user input into a ProjectType.
// Template lookups are case-insensitive, so "Node" and "node" are the same type.
func ParseProjectType(s string) ProjectType {
	return ProjectType(strings.ToLower(strings.TrimSpace(s)))
}

// IsBuiltin reports whether t is one of the built-in project types.
func (t ProjectType) IsBuiltin() bool {
	switch t {
	case ProjectTypeNode, ProjectTypeAngular, ProjectTypeElectron:
		return true
	}
	return false
}

// String returns the type identifier.
func (t ProjectType) String() string {
	return string(t)
}
