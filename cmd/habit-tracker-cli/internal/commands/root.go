package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the habit-tracker-cli command tree around handler
func NewRootCommand(handler *CommandHandler) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "habit-tracker-cli",
		Short: "Track habits from the command line",
		Long: `habit-tracker-cli manages accounts, habits, daily records and statistics
directly against the configured database.

Every command except "user register" signs in with --email and --password.
The configuration file is taken from --config or the CONFIG_PATH environment variable;
settings can be overridden with HABIT_ prefixed environment variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: handler.Connect,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", os.Getenv("CONFIG_PATH"), "Path to the configuration file")
	flags.StringP("email", "e", "", "Account email")
	flags.StringP("password", "p", "", "Account password")
	flags.StringP("output", "o", OutputTable, "Output format: table, json or yaml")

	InitUserCommands(rootCmd, handler)
	InitHabitCommands(rootCmd, handler)
	InitRecordCommands(rootCmd, handler)
	InitStatsCommands(rootCmd, handler)
	InitAdminCommands(rootCmd, handler)

	return rootCmd
}
