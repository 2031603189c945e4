package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List available project types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := GetDeps()
		if d == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		out := cmd.OutOrStdout()

		types := d.Templates.Types()
		if len(types) == 0 {
			_, _ = fmt.Fprintf(out, "No project types found in %s\n", d.TemplateSource)
			return nil
		}

		pairs := make([]kvPair, 0, len(types))
		for _, typ := range types {
			doc, err := d.Templates.Load(typ)
			switch {
			case err != nil:
				pairs = append(pairs, kvPair{key: typ, value: cliError.Render(err.Error())})
			case doc.Description == "":
				pairs = append(pairs, kvPair{key: typ, value: cliMuted.Render("-")})
			default:
				pairs = append(pairs, kvPair{key: typ, value: doc.Description})
			}
		}
		_, _ = fmt.Fprintln(out, renderKeyValueLines(pairs))
		_, _ = fmt.Fprintln(out, cliMuted.Render("source: "+d.TemplateSource))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
