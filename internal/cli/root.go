// Package cli wires the scarff commands. Commands parse and validate
// input at the boundary, hand a typed request to the project layer, and
// translate its errors into messages and exit codes.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scarff-dev/scarff/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "scarff",
	Short: "Scaffold new projects from built-in templates",
	Long: `scarff generates ready-to-build project skeletons for several
languages and frameworks. Point it at a language, optionally narrow the
target with a project type, architecture, and framework, and it creates
the project directory in one atomic step.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("scarff %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable diagnostic logging to stderr")
}

// newLogger builds the invocation logger: stderr text when --verbose,
// silent otherwise.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
