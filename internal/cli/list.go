package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scarff-dev/scarff/internal/config"
	"github.com/scarff-dev/scarff/internal/template"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in templates",
	Long: `List every template shipped in this binary, one per resolvable
target tuple.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("plain", false, "One tuple slug per line, no formatting")
}

func runList(cmd *cobra.Command, _ []string) error {
	store, err := template.Embedded()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	plain, _ := cmd.Flags().GetBool("plain")
	if plain {
		for _, tmpl := range store.All() {
			fmt.Fprintln(out, tmpl.Target.Slug())
		}
		return nil
	}

	cfg := config.Load(newLogger(cmd))
	color := useColor(cfg.Color)

	header := fmt.Sprintf("%-22s %-42s %s", "NAME", "TARGET", "DESCRIPTION")
	if color {
		header = cliMuted.Render(header)
	}
	fmt.Fprintln(out, header)

	for _, tmpl := range store.All() {
		name := tmpl.Name
		if color {
			name = cliPrimary.Render(fmt.Sprintf("%-22s", name))
		} else {
			name = fmt.Sprintf("%-22s", name)
		}
		fmt.Fprintf(out, "%s %-42s %s\n", name, tmpl.Target.String(), tmpl.Description)
	}

	fmt.Fprintf(out, "\n%d templates\n", store.Len())
	return nil
}
