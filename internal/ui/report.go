package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kickstart-dev/kickstart/internal/core/project"
)

// minReportWidth keeps wrapped report text readable on narrow terminals.
const minReportWidth = 40

// BuildReportMarkdown summarizes a build as markdown: phases that ran,
// failed init steps with the command to re-run, and what was written.
func BuildReportMarkdown(spec *project.Spec, result *project.BuildResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", spec.Name)
	fmt.Fprintf(&b, "**Status:** %s  \n**Type:** %s  \n**Location:** `%s`\n\n", result.Status(), spec.Type, result.Location)

	b.WriteString("## Phases\n\n")
	for _, rec := range result.Phases {
		switch {
		case rec.Skipped:
			fmt.Fprintf(&b, "- %s: skipped\n", rec.Phase.Title())
		case rec.Err != nil:
			fmt.Fprintf(&b, "- %s: **failed** (%s)\n", rec.Phase.Title(), rec.Err)
		default:
			fmt.Fprintf(&b, "- %s: done\n", rec.Phase.Title())
		}
	}
	b.WriteString("\n")

	if len(result.FailedSteps) > 0 {
		b.WriteString("## Failed steps\n\nRun these manually from the listed directory:\n\n")
		for _, f := range result.FailedSteps {
			fmt.Fprintf(&b, "- step %d in `%s`: `%s`\n", f.Index, f.Dir, f.Command)
		}
		b.WriteString("\n")
	}

	writeList(&b, "Created folders", result.CreatedDirs)
	writeList(&b, "Created files", result.CreatedFiles)
	writeList(&b, "Kept existing files", result.SkippedFiles)
	writeList(&b, "Premade configs to review", result.CopiedTemplates)
	writeList(&b, "Warnings", result.Warnings)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- `%s`\n", item)
	}
	b.WriteString("\n")
}

// RenderMarkdown renders md for the terminal with glamour, wrapped at width.
// On renderer failure the raw markdown is returned.
func RenderMarkdown(md string, width int, noColor bool) string {
	if md == "" {
		return ""
	}
	width = max(width, minReportWidth)

	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n ")
}

// CardRow is one label/value line of a card.
type CardRow struct {
	Label string
	Value string
}

// RenderCard draws a bordered summary box.
func RenderCard(theme *Theme, title string, rows []CardRow, color string) string {
	if theme == nil {
		theme = NewTheme(false)
	}
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}

	lines := []string{theme.Style(color).Bold(true).Render(title), ""}
	label := theme.Style(theme.Colors.Muted).Width(labelWidth + 2)
	for _, r := range rows {
		lines = append(lines, label.Render(r.Label)+r.Value)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !theme.NoColor && color != "" {
		box = box.BorderForeground(lipgloss.Color(color))
	}
	return box.Render(strings.Join(lines, "\n"))
}

// ResultCard summarizes a finished build in a card colored by its status.
func ResultCard(theme *Theme, spec *project.Spec, result *project.BuildResult) string {
	if theme == nil {
		theme = NewTheme(false)
	}
	title, color := "Project created", theme.Colors.Success
	switch result.Status() {
	case project.StatusPartial:
		title, color = "Project created with warnings", theme.Colors.Warning
	case project.StatusFailed:
		title, color = "Project setup failed", theme.Colors.Error
	}

	rows := []CardRow{
		{Label: "Name", Value: spec.Name},
		{Label: "Type", Value: spec.Type.String()},
		{Label: "Location", Value: result.Location},
		{Label: "Status", Value: string(result.Status())},
	}
	if n := len(result.FailedSteps); n > 0 {
		rows = append(rows, CardRow{Label: "Failed steps", Value: fmt.Sprint(n)})
	}
	if result.AbortedAt != "" {
		rows = append(rows, CardRow{Label: "Aborted at", Value: result.AbortedAt.Title()})
	}
	return RenderCard(theme, title, rows, color)
}
