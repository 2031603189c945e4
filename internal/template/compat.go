package template

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// checkCompatibility fails when the template declares a minimum kickstart
// version newer than the running binary. Development builds whose version
// does not parse as semver skip the check.
func checkCompatibility(minVersion, toolVersion string) error {
	minVersion = strings.TrimSpace(minVersion)
	if minVersion == "" {
		return nil
	}

	required, err := semver.NewVersion(minVersion)
	if err != nil {
		return fmt.Errorf("%w: minVersion %q is not a semantic version", ErrMalformed, minVersion)
	}

	current, err := semver.NewVersion(toolVersion)
	if err != nil {
		return nil
	}

	if current.LessThan(required) {
		return fmt.Errorf("%w: template needs %s, running %s", ErrIncompatible, required, current)
	}
	return nil
}
