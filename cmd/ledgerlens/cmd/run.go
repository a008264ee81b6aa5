package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/talentops/ledgerlens/internal/cmd/output"
	"github.com/talentops/ledgerlens/internal/config"
	"github.com/talentops/ledgerlens/pkg/constants"
	"github.com/talentops/ledgerlens/pkg/errors"
	"github.com/talentops/ledgerlens/pkg/logging"
	"github.com/talentops/ledgerlens/pkg/pipeline"
	"github.com/talentops/ledgerlens/pkg/records"
)

var (
	snapshotDir string
	outputDir   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the enrichment and reconciliation batch over a snapshot",
	Long: `Run validates the snapshot, resolves canonical records per worker,
reconciles invoices against the external ledger, and writes the two output
relations to the output directory. The run is all-or-nothing: on any schema
violation or cancellation, no output files are written.`,
	RunE: runBatch,
}

func init() {
	runCmd.Flags().StringVarP(&snapshotDir, "snapshot", "s", ".",
		"directory containing the input snapshot files")
	runCmd.Flags().StringVarP(&outputDir, "out", "d", "out",
		"directory to write the output relations to")
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	logging.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
	defer cancel()

	snap, err := records.Load(os.DirFS(snapshotDir))
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg.PipelineOptions()...)
	if err != nil {
		return err
	}

	result, err := p.Run(ctx, snap)
	if err != nil {
		return err
	}

	if err := writeResult(result); err != nil {
		return err
	}

	return output.NewFormatter(format).Format(cmd.OutOrStdout(), result)
}

// writeResult persists both output relations. Files are only written after
// the whole run has succeeded.
func writeResult(result *pipeline.Result) error {
	if err := os.MkdirAll(outputDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", outputDir, err)
	}

	if err := writeYAML(filepath.Join(outputDir, constants.ProfilesOutputFile), result.Profiles); err != nil {
		return err
	}
	return writeYAML(filepath.Join(outputDir, constants.ReconciledOutputFile), result.Invoices)
}

func writeYAML(path string, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, yamlData, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
