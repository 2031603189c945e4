package template

import (
	"embed"
	"io/fs"
)

//go:embed builtin
var builtinFS embed.FS

// Builtin returns the templates compiled into the binary, rooted so that
// "node.project.json" is at the top level.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return sub
}
