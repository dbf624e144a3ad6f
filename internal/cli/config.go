package cli

import (
	"fmt"

	"github.com/01000100GT/gemini-cli/internal/branding"
	"github.com/01000100GT/gemini-cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.DisplayName() + ` configuration stored at ~/` + branding.HomeDir() + `/config.yaml.

Update check keys:
  update.disabled    skip the startup check (true/false)
  update.source      npm or github
  update.registry    npm registry URL
  update.mirror      alternative registry or GitHub API base URL
  update.dist_tag    npm dist-tag treated as latest
  update.timeout     deadline for the check (e.g. 2s)
  update.installer   command shown in the notice (e.g. npm install -g)
  update.manifest    package manifest to read the installed version from

Logging keys:
  log.level          zerolog level (default warn)
  log.file           also write logs to this file`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
