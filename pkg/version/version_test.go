package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != GetVersion() {
		t.Errorf("Version = %q, want %q", info.Version, GetVersion())
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Error("runtime fields should be populated")
	}
	if !strings.Contains(info.String(), info.Version) {
		t.Errorf("String() = %q, missing version", info.String())
	}
}
