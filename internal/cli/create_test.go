package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kickstart-dev/kickstart/internal/core/project"
	"github.com/kickstart-dev/kickstart/internal/ui"
)

func TestCreateCmd_Exists(t *testing.T) {
	if createCmd == nil {
		t.Fatal("createCmd should not be nil")
	}
	if createCmd.Use != "create [type] [name]" {
		t.Errorf("createCmd.Use = %q", createCmd.Use)
	}
	if createCmd.Short == "" {
		t.Error("createCmd.Short should not be empty")
	}
}

func TestCreateCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"path", "dry-run", "no-editor", "non-interactive"} {
		if createCmd.Flags().Lookup(name) == nil {
			t.Errorf("create should have --%s", name)
		}
	}
	if f := createCmd.Flags().ShorthandLookup("p"); f == nil || f.Name != "path" {
		t.Error("-p should be the shorthand of --path")
	}
}

func TestCreate_BuildsProject(t *testing.T) {
	exec := &fakeExecutor{}
	d := newTestDeps(t, exec)
	base := t.TempDir()
	root := filepath.Join(base, "demo")

	out, err := executeCommand(t, "create", "node", "demo", "--path", base, "--no-editor")
	if err != nil {
		t.Fatalf("create error = %v\n%s", err, out)
	}

	if want := []string{"npm init -y", "npm install lodash"}; !slices.Equal(exec.calls, want) {
		t.Errorf("commands = %v, want %v", exec.calls, want)
	}
	for _, dir := range exec.dirs {
		if dir != root {
			t.Errorf("command ran in %q, want %q", dir, root)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, "src", "index.js"))
	if err != nil {
		t.Fatalf("skeleton file missing: %v", err)
	}
	if string(data) != "// demo\n" {
		t.Errorf("index.js = %q", data)
	}
	if _, err := os.Stat(filepath.Join(root, "_todo-.gitignore")); err != nil {
		t.Errorf("premade .gitignore not copied: %v", err)
	}

	manifest, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(manifest), `"start": "node src/index.js"`) {
		t.Errorf("scripts not merged: %s", manifest)
	}

	if !strings.Contains(out, "[1/9] Create project directory") {
		t.Errorf("missing progress output:\n%s", out)
	}
	if !strings.Contains(out, "created at "+root) {
		t.Errorf("missing success line:\n%s", out)
	}

	if err := d.Catalog.Load(); err != nil {
		t.Fatal(err)
	}
	projects := d.Catalog.Projects()
	if len(projects) != 1 {
		t.Fatalf("catalog has %d projects, want 1", len(projects))
	}
	p := projects[0]
	if p.Name != "demo" || p.RootPath != root {
		t.Errorf("recorded %+v", p)
	}
	if !slices.Equal(p.Tags, []string{"node"}) || !slices.Equal(p.Libraries, []string{"lodash"}) {
		t.Errorf("tags = %v, libraries = %v", p.Tags, p.Libraries)
	}
}

func TestCreate_OpensEditor(t *testing.T) {
	exec := &fakeExecutor{}
	newTestDeps(t, exec)
	base := t.TempDir()

	if out, err := executeCommand(t, "create", "node", "demo", "-p", base); err != nil {
		t.Fatalf("create error = %v\n%s", err, out)
	}
	last := exec.calls[len(exec.calls)-1]
	if !strings.HasPrefix(last, "code ") || !strings.Contains(last, filepath.Join(base, "demo")) {
		t.Errorf("last command = %q, want editor launch", last)
	}
}

func TestCreate_RecordingDisabled(t *testing.T) {
	d := newTestDeps(t, &fakeExecutor{})
	d.Settings.RecordProjects = false

	if out, err := executeCommand(t, "create", "bare", "demo", "-p", t.TempDir()); err != nil {
		t.Fatalf("create error = %v\n%s", err, out)
	}
	if _, err := os.Stat(d.Catalog.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("catalog should not be written, stat err = %v", err)
	}
}

func TestCreate_DryRun(t *testing.T) {
	exec := &fakeExecutor{}
	newTestDeps(t, exec)
	base := t.TempDir()

	out, err := executeCommand(t, "create", "node", "demo", "-p", base, "--dry-run")
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	var spec project.Spec
	if err := json.Unmarshal([]byte(out), &spec); err != nil {
		t.Fatalf("dry run output is not a plan: %v\n%s", err, out)
	}
	if spec.Location != filepath.Join(base, "demo") || len(spec.InitSteps) != 1 {
		t.Errorf("plan = %+v", spec)
	}
	if len(exec.calls) != 0 {
		t.Errorf("dry run ran commands: %v", exec.calls)
	}
	if _, err := os.Stat(spec.Location); !errors.Is(err, os.ErrNotExist) {
		t.Error("dry run must not create the project directory")
	}
}

func TestCreate_UnknownType(t *testing.T) {
	newTestDeps(t, &fakeExecutor{})
	base := t.TempDir()

	out, err := executeCommand(t, "create", "nod", "demo", "-p", base)
	if !errors.Is(err, project.ErrTemplateNotFound) {
		t.Fatalf("error = %v, want ErrTemplateNotFound", err)
	}
	if !strings.Contains(out, "kickstart types") {
		t.Errorf("missing hint:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(base, "demo")); !errors.Is(err, os.ErrNotExist) {
		t.Error("unknown type must not create a directory")
	}
}

func TestCreate_MalformedTemplate(t *testing.T) {
	newTestDeps(t, &fakeExecutor{})

	_, err := executeCommand(t, "create", "broken", "demo", "-p", t.TempDir())
	if !errors.Is(err, project.ErrTemplateMalformed) {
		t.Errorf("error = %v, want ErrTemplateMalformed", err)
	}
}

func TestCreate_NonInteractiveMissingName(t *testing.T) {
	d := newTestDeps(t, &fakeExecutor{})
	d.Headless.ClearForce()

	_, err := executeCommand(t, "create", "node", "--non-interactive")
	if !errors.Is(err, ui.ErrHeadlessNoDefaults) {
		t.Errorf("error = %v, want ErrHeadlessNoDefaults", err)
	}
	if !d.Headless.IsHeadless() {
		t.Error("--non-interactive should force headless mode")
	}
}

func TestCreate_FatalPhase(t *testing.T) {
	newTestDeps(t, &fakeExecutor{})
	base := t.TempDir()
	// A regular file where the project directory should go.
	if err := os.WriteFile(filepath.Join(base, "demo"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "create", "node", "demo", "-p", base, "--no-editor")
	var pe *project.PhaseError
	if !errors.As(err, &pe) || pe.Phase != project.PhaseCreateRoot {
		t.Fatalf("error = %v, want create-root PhaseError", err)
	}
	if !strings.Contains(out, "failed") {
		t.Errorf("missing failure output:\n%s", out)
	}
}

func TestCreate_TooManyArgs(t *testing.T) {
	newTestDeps(t, &fakeExecutor{})
	if _, err := executeCommand(t, "create", "node", "a", "b"); err == nil {
		t.Error("expected argument error")
	}
}
