package cli

import (
	"encoding/json"
	"fmt"

	"github.com/01000100GT/gemini-cli/internal/updater"
	"github.com/spf13/cobra"
)

var checkUpdateJSON bool

func init() {
	checkUpdateCmd.Flags().BoolVar(&checkUpdateJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(checkUpdateCmd)
}

var checkUpdateCmd = &cobra.Command{
	Use:   "check-update",
	Short: "Check whether a newer version is published",
	Long: `Asks the configured source (npm registry or GitHub releases) for the latest
published version and compares it with this build. The check gives up after
update.timeout (2s by default); failures are reported as warnings and never
change the exit code.

  gemini check-update
  gemini check-update --json
  GEMINI_UPDATE_SOURCE=github gemini check-update`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := newChecker(logger)
		if err != nil {
			return fmt.Errorf("configuring update check: %w", err)
		}

		out := checker.Check(cmd.Context())

		if checkUpdateJSON {
			info := map[string]any{
				"update_available": out.Kind == updater.UpdateAvailable,
				"current":          out.Current,
				"latest":           out.Latest,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		if out.Kind == updater.UpdateAvailable {
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "No update available (%s)\n", buildVersion)
		return nil
	},
}
