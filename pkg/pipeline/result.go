package pipeline

import (
	"fmt"
	"time"

	"github.com/talentops/ledgerlens/pkg/match"
	"github.com/talentops/ledgerlens/pkg/profile"
)

// Result represents the outcome of one pipeline run
type Result struct {
	// RunID uniquely identifies this run
	RunID string

	// Profiles is the enriched worker profile relation
	Profiles []profile.WorkerProfile

	// Invoices is the reconciled invoice relation
	Invoices []match.ReconciledInvoice

	// Warnings contains non-fatal data-quality findings
	Warnings []error

	// Stats summarizes what the run did
	Stats Statistics

	// Metadata about the run
	Metadata ResultMetadata
}

// ResultMetadata contains timing information about a run
type ResultMetadata struct {
	// StartTime when the run started
	StartTime time.Time

	// EndTime when the run completed
	EndTime time.Time

	// Duration of the run
	Duration time.Duration
}

// Statistics contains counts about one pipeline run
type Statistics struct {
	WorkersTotal          int         `json:"workers_total" yaml:"workers_total"`
	WorkersEligible       int         `json:"workers_eligible" yaml:"workers_eligible"`
	CanonicalBankAccounts int         `json:"canonical_bank_accounts" yaml:"canonical_bank_accounts"`
	CanonicalAddresses    int         `json:"canonical_addresses" yaml:"canonical_addresses"`
	FlagRows              int         `json:"flag_rows" yaml:"flag_rows"`
	SupplierMappings      int         `json:"supplier_mappings" yaml:"supplier_mappings"`
	Match                 match.Stats `json:"match" yaml:"match"`
}

// HasWarnings returns true if the run produced data-quality warnings
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the run
func (r *Result) Summary() string {
	s := fmt.Sprintf("Enriched %d of %d workers, reconciled %d of %d invoices in %s",
		r.Stats.WorkersEligible, r.Stats.WorkersTotal,
		len(r.Invoices), r.Stats.Match.Invoices,
		r.Metadata.Duration.Round(time.Millisecond))
	if r.HasWarnings() {
		s += fmt.Sprintf(" (%d warnings)", len(r.Warnings))
	}
	return s
}

// ResultBuilder helps construct Result objects
type ResultBuilder struct {
	result *Result
}

// NewResultBuilder creates a new ResultBuilder
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		result: &Result{
			Warnings: []error{},
			Metadata: ResultMetadata{
				StartTime: time.Now(),
			},
		},
	}
}

// WithRunID sets the run identifier
func (b *ResultBuilder) WithRunID(runID string) *ResultBuilder {
	b.result.RunID = runID
	return b
}

// WithProfiles sets the enriched profile relation
func (b *ResultBuilder) WithProfiles(profiles []profile.WorkerProfile) *ResultBuilder {
	b.result.Profiles = profiles
	return b
}

// WithInvoices sets the reconciled invoice relation
func (b *ResultBuilder) WithInvoices(invoices []match.ReconciledInvoice) *ResultBuilder {
	b.result.Invoices = invoices
	return b
}

// WithWarnings appends data-quality warnings
func (b *ResultBuilder) WithWarnings(warnings ...error) *ResultBuilder {
	b.result.Warnings = append(b.result.Warnings, warnings...)
	return b
}

// WithStatistics sets the run statistics
func (b *ResultBuilder) WithStatistics(stats Statistics) *ResultBuilder {
	b.result.Stats = stats
	return b
}

// Build finalizes and returns the Result
func (b *ResultBuilder) Build() *Result {
	b.result.Metadata.EndTime = time.Now()
	b.result.Metadata.Duration = b.result.Metadata.EndTime.Sub(b.result.Metadata.StartTime)
	return b.result
}
