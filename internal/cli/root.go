package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "kickstart",
	Short: "Scaffold new projects from configuration templates",
	Long: `kickstart creates a project directory from a template: it runs the
template's init steps, installs dependencies, lays out folders and skeleton
files, copies premade configs for review, merges package.json scripts and
opens the result in your editor.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: ensureDependencies,
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by the caller.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ensureDependencies wires deps from the persistent flags unless a
// container was already installed with SetDeps.
func ensureDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	return InitDependencies(depsOptions{
		configDir: getStringFlag(cmd, "config-dir"),
		verbose:   getBoolFlag(cmd, "verbose"),
		noColor:   getBoolFlag(cmd, "no-color"),
		logOut:    cmd.ErrOrStderr(),
	})
}

// getStringFlag returns a flag value, or "" when the flag does not exist.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// getBoolFlag returns a flag value, or false when the flag does not exist.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

// getStringSliceFlag returns a flag value, or nil when the flag does not exist.
func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("kickstart %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("config-dir", "", "Kickstart home directory (default $KICKSTART_HOME or ~/.kickstart)")
}
