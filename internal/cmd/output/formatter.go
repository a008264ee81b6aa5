// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/talentops/ledgerlens/pkg/pipeline"
)

// Format types for output.
type Format string

const (
	// FormatText represents human-readable text output.
	FormatText Format = "text"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates the appropriate formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TextFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TextFormatter renders a human-readable run summary. Data that is not a run
// result falls back to YAML.
type TextFormatter struct{}

// Format outputs data in text format.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	result, ok := data.(*pipeline.Result)
	if !ok {
		return (&YAMLFormatter{}).Format(w, data)
	}
	return writeRunSummary(w, result)
}

func writeRunSummary(w io.Writer, result *pipeline.Result) error {
	caser := cases.Title(language.English)

	if _, err := fmt.Fprintf(w, "Run %s\n%s\n\n", result.RunID, result.Summary()); err != nil {
		return err
	}

	rows := []struct {
		name  string
		value int
	}{
		{"workers_total", result.Stats.WorkersTotal},
		{"workers_eligible", result.Stats.WorkersEligible},
		{"canonical_bank_accounts", result.Stats.CanonicalBankAccounts},
		{"canonical_addresses", result.Stats.CanonicalAddresses},
		{"flag_rows", result.Stats.FlagRows},
		{"supplier_mappings", result.Stats.SupplierMappings},
		{"invoices_matched", result.Stats.Match.Matched},
		{"invoices_unmatched", result.Stats.Match.Unmatched},
		{"invoices_dropped_inactive", result.Stats.Match.DroppedInactive},
		{"ledger_fan_outs", result.Stats.Match.FanOuts},
		{"untranslated_statuses", result.Stats.Match.Untranslated},
	}

	for _, row := range rows {
		label := caser.String(strings.ReplaceAll(row.name, "_", " "))
		if _, err := fmt.Fprintf(w, "%-28s %d\n", label, row.value); err != nil {
			return err
		}
	}

	if result.HasWarnings() {
		if _, err := fmt.Fprintf(w, "\nWarnings (%d):\n", len(result.Warnings)); err != nil {
			return err
		}
		for i, warning := range result.Warnings {
			if _, err := fmt.Fprintf(w, "%d. %v\n", i+1, warning); err != nil {
				return err
			}
		}
	}

	return nil
}

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", s)
	}
}
