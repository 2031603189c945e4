package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/kickstart-dev/kickstart/internal/core/project"
)

func sampleBuild() (*project.Spec, *project.BuildResult) {
	spec := &project.Spec{Name: "demo", Type: "node", Location: "/work/demo"}
	result := &project.BuildResult{
		Location: "/work/demo",
		Phases: []project.PhaseRecord{
			{Phase: project.PhaseCreateRoot},
			{Phase: project.PhaseInitSteps},
			{Phase: project.PhaseOpenEditor, Skipped: true},
		},
		FailedSteps: []project.StepFailure{
			{Phase: project.PhaseInitSteps, Index: 0, Command: "git init", Dir: "/work/demo", Err: errors.New("boom")},
		},
		CreatedDirs:     []string{"src"},
		CreatedFiles:    []string{"src/index.ts"},
		CopiedTemplates: []string{"_todo-.gitignore"},
	}
	return spec, result
}

func TestBuildReportMarkdown(t *testing.T) {
	md := BuildReportMarkdown(sampleBuild())

	for _, want := range []string{
		"# demo",
		"**Status:** partial",
		"- Create project directory: done",
		"- Open in editor: skipped",
		"- step 0 in `/work/demo`: `git init`",
		"## Created folders",
		"- `src/index.ts`",
		"## Premade configs to review",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Warnings") {
		t.Error("empty section rendered")
	}
}

func TestRenderMarkdown_Plain(t *testing.T) {
	out := RenderMarkdown("# Title\n\nSome *text* here.\n", 80, true)
	if !strings.Contains(out, "Title") || !strings.Contains(out, "text") {
		t.Errorf("RenderMarkdown() = %q", out)
	}
	if RenderMarkdown("", 80, true) != "" {
		t.Error("empty input should render empty")
	}
}

func TestResultCard(t *testing.T) {
	spec, result := sampleBuild()
	card := ResultCard(NewTheme(true), spec, result)

	for _, want := range []string{"Project created with warnings", "demo", "/work/demo", "Failed steps"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}

	result.AbortedAt = project.PhaseInstall
	card = ResultCard(NewTheme(true), spec, result)
	if !strings.Contains(card, "Project setup failed") || !strings.Contains(card, "Install dependencies") {
		t.Errorf("failed card:\n%s", card)
	}
}
