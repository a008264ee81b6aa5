// Package cmd implements the ledgerlens CLI commands.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talentops/ledgerlens/pkg/logging"
)

var (
	configFile   string
	outputFormat string
	logLevel     string
	logFormat    string

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledgerlens",
	Short: "Worker enrichment and invoice reconciliation batch",
	Long: `Ledgerlens turns point-in-time operational snapshots into two canonical
output relations: enriched worker profiles (one row per eligible worker, with
canonical bank account, invoicing address, and compliance flags) and
reconciled invoices (internal invoices joined against the external supplier
ledger, with translated statuses).

Runs are deterministic and all-or-nothing: the same snapshot always produces
byte-identical output, and nothing is published when a run fails.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logging.Configure(logLevel, logFormat)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it with a
// signal-aware context.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is ./.ledgerlens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"output format for run summaries (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, console, json)")
}
