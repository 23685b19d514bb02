// Package root contains the root command for the application.
package root

import (
	"raj/stmt-extract/internal/config"
	"raj/stmt-extract/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags holds the flags shared by the subcommands.
type CommonFlags struct {
	Output  string
	Format  string
	Workers int
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration, populated before any
	// subcommand runs.
	Cfg *config.Config

	// SharedFlags is accessible to all commands.
	SharedFlags = CommonFlags{}

	// Description is the categorize command input.
	Description string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "stmt-extract",
		Short: "Extract and categorize transactions from card statement documents.",
		Long: `stmt-extract parses the text of credit card statements into structured
card metadata and a normalized, categorized transaction list. It
recognizes the statement layouts of several card issuers, merges
multiple statements, and removes duplicates.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to stmt-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("failed to load configuration")
			}
			Cfg = cfg
			config.ApplyLogging(cfg)

			if SharedFlags.Format == "" {
				SharedFlags.Format = cfg.Output.Format
			}
			if SharedFlags.Workers == 0 {
				SharedFlags.Workers = cfg.Batch.Workers
			}
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: csv or yaml")
	Cmd.PersistentFlags().IntVarP(&SharedFlags.Workers, "workers", "w", 0, "Parse worker count (0 = one per CPU)")
}
