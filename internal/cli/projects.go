package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/catalog"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the catalog of known projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectsList,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add an existing project directory to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsAdd,
}

var projectsScanCmd = &cobra.Command{
	Use:   "scan <dir>...",
	Short: "Add every subdirectory of the given directories to the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProjectsScan,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd, projectsAddCmd, projectsScanCmd)

	projectsListCmd.Flags().Bool("json", false, "Print the catalog as JSON")

	projectsAddCmd.Flags().String("name", "", "Project name (default: directory name)")
	projectsAddCmd.Flags().StringSlice("tag", nil, "Tag to attach (repeatable)")
	projectsAddCmd.Flags().Bool("favorite", false, "Mark the project as a favorite")

	projectsScanCmd.Flags().Bool("libraries", false, "Record package.json dependencies of each project")
	projectsScanCmd.Flags().Bool("hidden", false, "Include directories starting with a dot")
	projectsScanCmd.Flags().Bool("dry-run", false, "Show what would be added without saving")
}

func loadCatalog() (*catalog.Store, error) {
	d := GetDeps()
	if d == nil {
		return nil, fmt.Errorf("dependencies not initialized")
	}
	if err := d.Catalog.Load(); err != nil {
		return nil, err
	}
	return d.Catalog, nil
}

func runProjectsList(cmd *cobra.Command, _ []string) error {
	store, err := loadCatalog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	projects := store.Projects()

	if getBoolFlag(cmd, "json") {
		if projects == nil {
			projects = []catalog.Project{}
		}
		data, err := json.MarshalIndent(projects, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	if len(projects) == 0 {
		_, _ = fmt.Fprintln(out, cliMuted.Render("No projects recorded in "+store.Path()))
		return nil
	}
	pairs := make([]kvPair, 0, len(projects))
	for _, p := range projects {
		name := p.Name
		if p.Favorite {
			name += " *"
		}
		value := p.RootPath
		if len(p.Tags) > 0 {
			value += cliMuted.Render(" [" + strings.Join(p.Tags, ", ") + "]")
		}
		if !p.Enabled {
			value += cliMuted.Render(" (disabled)")
		}
		pairs = append(pairs, kvPair{key: name, value: value})
	}
	_, _ = fmt.Fprintln(out, renderKeyValueLines(pairs))
	return nil
}

func runProjectsAdd(cmd *cobra.Command, args []string) error {
	store, err := loadCatalog()
	if err != nil {
		return err
	}
	root, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	name := getStringFlag(cmd, "name")
	if name == "" {
		name = filepath.Base(root)
	}
	p := catalog.NewProject(name, root, getStringSliceFlag(cmd, "tag")...)
	p.Favorite = getBoolFlag(cmd, "favorite")
	libs, err := catalog.DetectLibraries(root)
	if err != nil {
		return err
	}
	if len(libs) > 0 {
		p.Libraries = libs
	}

	out := cmd.OutOrStdout()
	if !store.Add(p) {
		_, _ = fmt.Fprintf(out, "%s %s is already recorded\n", symWarning(), root)
		return nil
	}
	if err := store.Save(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "%s Added %s\n", symSuccess(), cliPrimary.Render(name))
	return nil
}

func runProjectsScan(cmd *cobra.Command, args []string) error {
	store, err := loadCatalog()
	if err != nil {
		return err
	}
	scanner := catalog.NewScanner(GetDeps().Logger)
	scanner.DetectLibraries = getBoolFlag(cmd, "libraries")
	scanner.IncludeHidden = getBoolFlag(cmd, "hidden")

	found, err := scanner.Scan(cmd.Context(), args...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dryRun := getBoolFlag(cmd, "dry-run")
	added := 0
	for _, p := range found {
		if !store.Add(p) {
			continue
		}
		added++
		_, _ = fmt.Fprintf(out, "  + %s %s\n", p.Name, cliMuted.Render(p.RootPath))
	}

	if dryRun {
		_, _ = fmt.Fprintf(out, "%d of %d projects would be added (dry run)\n", added, len(found))
		return nil
	}
	if added > 0 {
		if err := store.Save(); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintf(out, "%s Added %d of %d projects\n", symSuccess(), added, len(found))
	return nil
}
