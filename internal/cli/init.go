package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scarff-dev/scarff/internal/config"
	"github.com/scarff-dev/scarff/internal/defs"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a configuration file with default values to the scarff config
location, ready to edit. Use "scarff config path" to see where it goes.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("locate config path: %w", err)
	}

	out := cmd.OutOrStdout()
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	data, err := yaml.Marshal(config.NewDefaultConfig())
	if err != nil {
		return fmt.Errorf("serialize default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(out, "Configuration created at %s\n", path)
	return nil
}
