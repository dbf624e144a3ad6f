package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/01000100GT/gemini-cli/internal/branding"
	"github.com/01000100GT/gemini-cli/internal/config"
	"github.com/01000100GT/gemini-cli/internal/logging"
	"github.com/01000100GT/gemini-cli/internal/updater"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	noUpdateCheck bool
	logger        = zerolog.Nop()
	pendingUpdate <-chan updater.Outcome
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&noUpdateCheck, "no-update-check", false, "Skip the startup update check")
}

var rootCmd = &cobra.Command{
	Use:           branding.CLIName(),
	Short:         branding.Description(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger = logging.New(cmd.ErrOrStderr(), logging.Options{
			Level: config.Get(config.KeyLogLevel),
			File:  config.Get(config.KeyLogFile),
		})
		pendingUpdate = nil

		// Skip banners for commands that manage their own state.
		switch cmd.Name() {
		case "check-update", "config", "set", "get", "version":
			return
		}
		if noUpdateCheck || config.Update().Disabled {
			return
		}

		checker, err := newChecker(logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Update check disabled")
			return
		}
		// Runs alongside the command; collected in PersistentPostRun.
		pendingUpdate = checker.Start(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		printPendingUpdate(cmd.ErrOrStderr())
	},
}

// printPendingUpdate waits for the background check, which is bounded by the
// check deadline, and prints the notice when there is one.
func printPendingUpdate(w io.Writer) {
	if pendingUpdate == nil {
		return
	}
	out := <-pendingUpdate
	pendingUpdate = nil
	if out.Kind == updater.UpdateAvailable {
		fmt.Fprintf(w, "\n%s\n\n", out.Message)
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.ExecuteContext(context.Background())
}
