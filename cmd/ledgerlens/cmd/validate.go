package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/talentops/ledgerlens/pkg/logging"
	"github.com/talentops/ledgerlens/pkg/records"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a snapshot without running the batch",
	Long: `Validate loads the snapshot files and applies the same schema checks the
run command applies before processing: required fields, duplicate keys, and
parseable YAML. Exits non-zero on the first violation found.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logging.FromContext(cmd.Context())

		snap, err := records.Load(os.DirFS(snapshotDir))
		if err != nil {
			return err
		}
		if err := snap.Validate(); err != nil {
			return err
		}

		log.Info().
			Int("workers", len(snap.Workers)).
			Int("bank_accounts", len(snap.BankAccounts)).
			Int("addresses", len(snap.Addresses)).
			Int("compliance_docs", len(snap.ComplianceDocs)).
			Int("invoices", len(snap.Invoices)).
			Int("ledger_entries", len(snap.Ledger)).
			Int("supplier_links", len(snap.SupplierLinks)).
			Int("status_entries", len(snap.StatusDictionary)).
			Msg("Snapshot is valid")

		cmd.Println("snapshot valid")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&snapshotDir, "snapshot", "s", ".",
		"directory containing the input snapshot files")
	rootCmd.AddCommand(validateCmd)
}
