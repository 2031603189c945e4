// Package models provides shared data models and types for kickstart.
//
// # Project Types
//
// A project type selects the configuration template that governs a build.
// The built-in types are:
//   - Node: a plain Node.js package
//   - Angular: an Angular workspace generated by the Angular CLI
//   - Electron: an Electron desktop application
//
// A custom templates directory may register further types; [ProjectType]
// is therefore a string type, and [BuiltinProjectTypes] lists only the
// types shipped inside the binary.
//
//	t := models.ParseProjectType("Node") // models.ProjectTypeNode
//	if t.IsBuiltin() {
//	    fmt.Println("built-in:", t)
//	}
package models
