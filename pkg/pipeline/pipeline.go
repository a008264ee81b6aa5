// Package pipeline orchestrates one ledgerlens batch run: snapshot
// validation, canonical record resolution, flag aggregation, supplier key
// mapping, cross-system invoice reconciliation, and profile assembly. A run
// is all-or-nothing; partial results are never published.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentops/ledgerlens/pkg/constants"
	"github.com/talentops/ledgerlens/pkg/errors"
	"github.com/talentops/ledgerlens/pkg/flags"
	"github.com/talentops/ledgerlens/pkg/logging"
	"github.com/talentops/ledgerlens/pkg/match"
	"github.com/talentops/ledgerlens/pkg/profile"
	"github.com/talentops/ledgerlens/pkg/records"
	"github.com/talentops/ledgerlens/pkg/resolve"
	"github.com/talentops/ledgerlens/pkg/status"
	"github.com/talentops/ledgerlens/pkg/supplier"
)

// Pipeline runs the enrichment and reconciliation batch over immutable
// input snapshots. It is stateless across runs; the same pipeline applied to
// byte-identical snapshots produces byte-identical results.
type Pipeline struct {
	bankPurpose  string
	addressType  string
	statusDomain string
	eligibility  profile.Eligibility
	flagSet      flags.Set
}

// Option configures a Pipeline
type Option func(*Pipeline) error

// New creates a new Pipeline with options. Defaults match the standard
// deployment; production runs override them from configuration.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		bankPurpose:  constants.DefaultBankPurpose,
		addressType:  constants.DefaultAddressType,
		statusDomain: constants.DefaultStatusDomain,
		eligibility: profile.Eligibility{
			WorkerType:        constants.DefaultWorkerType,
			StandardAgreement: constants.DefaultStandardAgreement,
		},
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Run executes the batch over one snapshot. It validates the snapshot first
// and aborts on any schema violation; it also honors context cancellation
// between stages, returning ErrCanceled without publishing anything.
func (p *Pipeline) Run(ctx context.Context, snap *records.Snapshot) (*Result, error) {
	log := logging.FromContext(ctx)

	builder := NewResultBuilder().WithRunID(uuid.NewString())

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Int("workers", len(snap.Workers)).
		Int("invoices", len(snap.Invoices)).
		Int("ledger_entries", len(snap.Ledger)).
		Msg("Snapshot validated, starting run")

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	// Feature tables at worker grain
	canonicalBank := resolve.BankAccounts(p.bankPurpose, snap.BankAccounts)
	canonicalAddr := resolve.Addresses(p.addressType, snap.Addresses)
	flagRows := flags.Aggregate(p.flagSet, snap.ComplianceDocs)
	log.Debug().
		Int("bank_accounts", len(canonicalBank)).
		Int("addresses", len(canonicalAddr)).
		Int("flag_rows", len(flagRows)).
		Msg("Canonical feature tables resolved")

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	// Cross-system reconciliation
	mappings := supplier.Map(snap.SupplierLinks)
	translator := status.NewTranslator(snap.StatusDictionary, p.statusDomain)
	matchResult := match.Reconcile(snap.Invoices, snap.Ledger, mappings, translator)

	for _, warning := range matchResult.Warnings {
		log.Warn().Err(warning).Msg("Ledger key fan-out detected")
	}

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	// Profile assembly
	profiles := profile.Assemble(p.eligibility, p.flagSet, snap.Workers,
		canonicalBank, canonicalAddr, flagRows)

	result := builder.
		WithProfiles(profiles).
		WithInvoices(matchResult.Rows).
		WithWarnings(matchResult.Warnings...).
		WithStatistics(Statistics{
			WorkersTotal:          len(snap.Workers),
			WorkersEligible:       len(profiles),
			CanonicalBankAccounts: len(canonicalBank),
			CanonicalAddresses:    len(canonicalAddr),
			FlagRows:              len(flagRows),
			SupplierMappings:      len(mappings),
			Match:                 matchResult.Stats,
		}).
		Build()

	log.Info().
		Str("run_id", result.RunID).
		Int("profiles", len(result.Profiles)).
		Int("reconciled_invoices", len(result.Invoices)).
		Int("fan_outs", result.Stats.Match.FanOuts).
		Dur("duration", result.Metadata.Duration).
		Msg("Run completed")

	return result, nil
}

func canceled(ctx context.Context) error {
	if ctx.Err() != nil {
		return errors.ErrCanceled
	}
	return nil
}

// Option Functions
// ================

// WithBankPurpose sets the account purpose that counts as canonical
func WithBankPurpose(purpose string) Option {
	return func(p *Pipeline) error {
		if purpose == "" {
			return errors.NewConfigError("bank_purpose", "must not be empty", nil)
		}
		p.bankPurpose = purpose
		return nil
	}
}

// WithAddressType sets the address type that counts as canonical
func WithAddressType(addressType string) Option {
	return func(p *Pipeline) error {
		if addressType == "" {
			return errors.NewConfigError("address_type", "must not be empty", nil)
		}
		p.addressType = addressType
		return nil
	}
}

// WithStatusDomain sets the record-type domain for status translation
func WithStatusDomain(domain string) Option {
	return func(p *Pipeline) error {
		if domain == "" {
			return errors.NewConfigError("status_domain", "must not be empty", nil)
		}
		p.statusDomain = domain
		return nil
	}
}

// WithEligibility sets the entity filter applied before profile assembly
func WithEligibility(e profile.Eligibility) Option {
	return func(p *Pipeline) error {
		if e.WorkerType == "" {
			return errors.NewConfigError("eligibility", "worker type must not be empty", nil)
		}
		p.eligibility = e
		return nil
	}
}

// WithFlags sets the compliance flag set computed per worker
func WithFlags(set flags.Set) Option {
	return func(p *Pipeline) error {
		seen := make(map[string]struct{}, len(set))
		for _, f := range set {
			if f.Name == "" {
				return errors.NewConfigError("flags", "flag name must not be empty", nil)
			}
			if _, dup := seen[f.Name]; dup {
				return errors.NewConfigError("flags", "duplicate flag name "+f.Name, nil)
			}
			seen[f.Name] = struct{}{}
		}
		p.flagSet = set
		return nil
	}
}
