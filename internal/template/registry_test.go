package template

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"
)

const validDoc = `{
  "initSteps": ["git init", "cd src"],
  "installSteps": {"dependencies": ["express"]},
  "folders": ["src"],
  "files": [{"nameAndPath": "src/index.js", "content": "// _PROJECT_NAME_PLACEHOLDER_"}],
  "scripts": {"start": "node src/index.js"}
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"node.project.json": {Data: []byte(validDoc)},
		"go.project.yaml": {Data: []byte(`
initSteps: ["go mod init _PROJECT_NAME_PLACEHOLDER_"]
folders: [cmd]
files:
  - nameAndPath: cmd/main.go
    content: "package main\n"
scripts: {}
`)},
		"broken.project.json":  {Data: []byte(`{"initSteps": [`)},
		"invalid.project.json": {Data: []byte(`{"initSteps": "git init", "folders": [], "files": [], "scripts": {}}`)},
		"future.project.json":  {Data: []byte(`{"minVersion": "99.0.0", "initSteps": [], "folders": [], "files": [], "scripts": {}}`)},
		"node.gitignore":       {Data: []byte("node_modules/\n")},
		"README.md":            {Data: []byte("not a template")},
	}
}

func TestRegistry_LoadJSON(t *testing.T) {
	reg := NewRegistry(testFS(), "v1.2.0", nil)

	doc, err := reg.Load("node")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(doc.InitSteps, []string{"git init", "cd src"}) {
		t.Errorf("InitSteps = %v", doc.InitSteps)
	}
	if doc.InstallSteps == nil || !slices.Equal(doc.InstallSteps.Dependencies, []string{"express"}) {
		t.Errorf("InstallSteps = %+v", doc.InstallSteps)
	}
	if doc.InstallSteps.DevDependencies != nil {
		t.Errorf("DevDependencies = %v, want nil (absent in document)", doc.InstallSteps.DevDependencies)
	}
	if len(doc.Files) != 1 || doc.Files[0].Content != "// _PROJECT_NAME_PLACEHOLDER_" {
		t.Errorf("Files = %+v", doc.Files)
	}
}

func TestRegistry_LoadIsCaseInsensitive(t *testing.T) {
	reg := NewRegistry(testFS(), "v1.2.0", nil)
	if _, err := reg.Load("NODE"); err != nil {
		t.Fatalf("Load(NODE) error = %v", err)
	}
}

func TestRegistry_LoadYAML(t *testing.T) {
	reg := NewRegistry(testFS(), "v1.2.0", nil)

	doc, err := reg.Load("go")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Files) != 1 || doc.Files[0].Content != "package main\n" {
		t.Errorf("Files = %+v", doc.Files)
	}
}

func TestRegistry_LoadErrors(t *testing.T) {
	reg := NewRegistry(testFS(), "v1.2.0", nil)

	tests := []struct {
		typ  string
		want error
	}{
		{"unknown", ErrNotFound},
		{"", ErrNotFound},
		{"../etc", ErrNotFound},
		{"broken", ErrMalformed},
		{"invalid", ErrMalformed},
		{"future", ErrIncompatible},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			_, err := reg.Load(tt.typ)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load(%q) error = %v, want %v", tt.typ, err, tt.want)
			}
		})
	}
}

func TestRegistry_DevVersionSkipsCompatibility(t *testing.T) {
	reg := NewRegistry(testFS(), "dev", nil)
	if _, err := reg.Load("future"); err != nil {
		t.Errorf("Load(future) with dev build error = %v", err)
	}
}

func TestRegistry_Types(t *testing.T) {
	reg := NewRegistry(testFS(), "v1.2.0", nil)
	want := []string{"broken", "future", "go", "invalid", "node"}
	if got := reg.Types(); !slices.Equal(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
}

func TestRegistry_Suggest(t *testing.T) {
	reg := NewRegistry(testFS(), "v1.2.0", nil)
	got := reg.Suggest("nod")
	if len(got) == 0 || got[0] != "node" {
		t.Errorf("Suggest(nod) = %v, want node first", got)
	}
	if got := reg.Suggest(""); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}

func TestRegistry_CopyFile(t *testing.T) {
	reg := NewRegistry(testFS(), "v1.2.0", nil)
	dst := filepath.Join(t.TempDir(), "_todo-.gitignore")

	if !reg.HasFile("node.gitignore") {
		t.Fatal("HasFile(node.gitignore) = false")
	}
	if reg.HasFile("angular.gitignore") {
		t.Error("HasFile(angular.gitignore) = true")
	}

	if err := reg.CopyFile("node.gitignore", dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "node_modules/\n" {
		t.Errorf("copied content = %q", data)
	}

	err = reg.CopyFile("node.gitignore", dst)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("second CopyFile() error = %v, want fs.ErrExist", err)
	}
}

func TestBuiltin_AllTemplatesLoad(t *testing.T) {
	reg := NewRegistry(Builtin(), "v1.2.0", nil)
	types := reg.Types()
	for _, want := range []string{"angular", "electron", "node"} {
		if !slices.Contains(types, want) {
			t.Errorf("builtin types %v missing %q", types, want)
		}
	}
	for _, typ := range types {
		if _, err := reg.Load(typ); err != nil {
			t.Errorf("builtin %s: %v", typ, err)
		}
	}
}

func TestOpen_FallsBackToBuiltin(t *testing.T) {
	_, source := Open(filepath.Join(t.TempDir(), "missing"), "v1.2.0", nil)
	if source != "builtin" {
		t.Errorf("source = %q, want builtin", source)
	}

	dir := t.TempDir()
	_, source = Open(dir, "v1.2.0", nil)
	if source != dir {
		t.Errorf("source = %q, want %q", source, dir)
	}
}
