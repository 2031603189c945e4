package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write kickstart settings",
	Long: fmt.Sprintf(`Read and write the settings stored in config.yaml under the kickstart
home directory. Environment variables prefixed with %s_ override the file.

Keys: %s`, config.EnvPrefix, strings.Join(config.Keys(), ", ")),
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := GetDeps()
		if d == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		value, err := d.Config.Get(args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting to config.yaml",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := GetDeps()
		if d == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		if err := d.Config.Set(args[0], args[1]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", symSuccess(), args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting with its effective value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := GetDeps()
		if d == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		entries := d.Config.List()
		pairs := make([]kvPair, 0, len(entries))
		for _, e := range entries {
			pairs = append(pairs, kvPair{key: e.Key, value: e.Value})
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, renderKeyValueLines(pairs))
		_, _ = fmt.Fprintln(out, cliMuted.Render("file: "+d.Config.FilePath()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)
}
