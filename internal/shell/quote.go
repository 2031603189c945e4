package shell

import (
	"runtime"
	"strings"
)

// Quote returns s quoted for the platform shell when it contains characters
// the shell would interpret. Plain package specifiers such as
// "@types/node" or "lodash@4.17.21" are returned unchanged.
func Quote(s string) string {
	return quoteFor(runtime.GOOS, s)
}

// QuotePath quotes a filesystem path for the platform shell.
func QuotePath(p string) string {
	return quoteFor(runtime.GOOS, p)
}

// quoteFor single-quotes for sh and double-quotes for cmd. cmd still
// expands %VAR% inside double quotes; there is no escape for it under /C.
func quoteFor(goos, s string) string {
	if s != "" && isSafe(s) {
		return s
	}
	if goos == "windows" {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// isSafe reports whether s has no character special to sh or cmd.
func isSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("@/._-+:=,", r):
		default:
			return false
		}
	}
	return true
}
