// Package version exposes build metadata for the kickstart binary.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables injected via -ldflags.
var (
	Version = "v1.2.0"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build metadata printed by "kickstart version".
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// Get returns the full build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the metadata on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s %s)", i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}
