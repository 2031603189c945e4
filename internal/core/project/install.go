package project

import (
	"strings"

	"github.com/kickstart-dev/kickstart/internal/shell"
)

// DefaultPackageManager is used when no package manager is configured.
const DefaultPackageManager = "npm"

// installVerbs maps a package manager to its regular and dev install arguments.
var installVerbs = map[string][2]string{
	"npm":  {"install", "install --save-dev"},
	"pnpm": {"add", "add --save-dev"},
	"yarn": {"add", "add --dev"},
	"bun":  {"add", "add --dev"},
}

// PackageManagers returns the supported package manager names.
func PackageManagers() []string {
	return []string{"npm", "pnpm", "yarn", "bun"}
}

// installCommand builds one install invocation for pkgs.
func installCommand(pm string, pkgs []string, dev bool) string {
	verbs, ok := installVerbs[pm]
	if !ok {
		pm, verbs = DefaultPackageManager, installVerbs[DefaultPackageManager]
	}
	verb := verbs[0]
	if dev {
		verb = verbs[1]
	}

	parts := make([]string, 0, len(pkgs)+2)
	parts = append(parts, pm, verb)
	for _, p := range pkgs {
		parts = append(parts, shell.Quote(p))
	}
	return strings.Join(parts, " ")
}
