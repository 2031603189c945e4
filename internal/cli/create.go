package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/catalog"
	"github.com/kickstart-dev/kickstart/internal/core/project"
	"github.com/kickstart-dev/kickstart/internal/ui"
	"github.com/kickstart-dev/kickstart/pkg/models"
)

var createCmd = &cobra.Command{
	Use:   "create [type] [name]",
	Short: "Create a new project from a template",
	Long: `Create a project of the given type. Missing arguments are asked for
interactively on a terminal.

The project is created at <path>/<name>, where --path defaults to the
current directory. Existing files are never overwritten.`,
	Example: `  kickstart create node my-lib
  kickstart create angular dashboard --path ~/work --no-editor
  kickstart create electron app --dry-run`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("path", "p", "", "Parent directory of the new project (default: current directory)")
	createCmd.Flags().Bool("dry-run", false, "Print the resolved plan as JSON without touching disk")
	createCmd.Flags().Bool("no-editor", false, "Do not open the project in the editor")
	createCmd.Flags().Bool("non-interactive", false, "Never prompt; fail when type or name is missing")
}

func runCreate(cmd *cobra.Command, args []string) error {
	d := GetDeps()
	if d == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	var partial ui.CreateAnswers
	if len(args) > 0 {
		partial.Type = args[0]
	}
	if len(args) > 1 {
		partial.Name = args[1]
	}
	if getBoolFlag(cmd, "non-interactive") {
		d.Headless.ForceHeadless(true)
	}

	answers, err := ui.NewCreateWizard(d.Theme, d.Headless, d.Templates.Types()).Run(ctx, partial)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			_, _ = fmt.Fprintln(out, cliMuted.Render("Cancelled."))
			return nil
		}
		if errors.Is(err, ui.ErrHeadlessNoDefaults) {
			return fmt.Errorf("%w (pass it as an argument)", err)
		}
		return err
	}

	spec, err := d.NewResolver().Resolve(ctx, answers.Name, models.ParseProjectType(answers.Type), getStringFlag(cmd, "path"))
	if err != nil {
		printResolveHelp(out, err)
		return err
	}

	if getBoolFlag(cmd, "dry-run") {
		data, err := spec.JSON()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	progress := ui.NewBuildProgress(d.Theme, d.Headless, out)
	opts := []project.BuilderOption{project.WithReporter(progress)}
	if getBoolFlag(cmd, "no-editor") {
		opts = append(opts, project.WithoutEditor())
	}
	result, buildErr := d.NewBuilder(opts...).Build(ctx, spec)
	progress.Close()

	if result != nil {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, ui.ResultCard(d.Theme, spec, result))
		_, _ = fmt.Fprint(out, ui.RenderMarkdown(ui.BuildReportMarkdown(spec, result), termWidth(out), d.Theme.NoColor || d.Headless.IsHeadless()))
	}
	if buildErr != nil {
		_, _ = fmt.Fprintf(out, "%s %s\n", symError(), buildErr)
		return buildErr
	}

	if d.Settings.RecordProjects {
		if err := recordProject(d, spec); err != nil {
			d.Logger.Warn("project not recorded", "error", err)
			_, _ = fmt.Fprintf(out, "%s could not record project: %v\n", symWarning(), err)
		}
	}

	_, _ = fmt.Fprintf(out, "%s Project %s created at %s\n", symSuccess(), cliPrimary.Render(spec.Name), spec.Location)
	return nil
}

// printResolveHelp lists the available types when the requested one is unknown.
func printResolveHelp(w io.Writer, err error) {
	var re *project.ResolveError
	if !errors.As(err, &re) || !errors.Is(err, project.ErrTemplateNotFound) {
		return
	}
	if len(re.Suggestions) > 0 {
		_, _ = fmt.Fprintf(w, "%s Did you mean: %s\n", symWarning(), cliPrimary.Render(re.Suggestions[0]))
	}
	_, _ = fmt.Fprintln(w, cliMuted.Render("Run 'kickstart types' to list available project types."))
}

// recordProject adds a freshly built project to the catalog.
func recordProject(d *Dependencies, spec *project.Spec) error {
	if err := d.Catalog.Load(); err != nil {
		return err
	}
	p := catalog.NewProject(spec.Name, spec.Location, spec.Type.String())
	libs, err := catalog.DetectLibraries(spec.Location)
	if err != nil {
		d.Logger.Debug("library detection failed", "root", spec.Location, "error", err)
	}
	p.Libraries = libs
	if !d.Catalog.Add(p) {
		return nil
	}
	return d.Catalog.Save()
}
