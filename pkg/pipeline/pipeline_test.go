package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/ledgerlens/pkg/errors"
	"github.com/talentops/ledgerlens/pkg/flags"
	"github.com/talentops/ledgerlens/pkg/logging"
	"github.com/talentops/ledgerlens/pkg/pipeline"
	"github.com/talentops/ledgerlens/pkg/profile"
	"github.com/talentops/ledgerlens/pkg/records"
)

func at(day int) utc.Time {
	return utc.Time{Time: time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)}
}

func newPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()

	p, err := pipeline.New(
		pipeline.WithEligibility(profile.Eligibility{
			WorkerType:         "Freelancer",
			EngagementStatuses: []string{"Engaged"},
			BusinessUnits:      []string{"FR01", "DE02"},
			StandardAgreement:  "Standard",
		}),
		pipeline.WithFlags(flags.Set{
			flags.LabelFlag("has_incorporation_doc", "Incorporation"),
			flags.LabelFlag("has_bank_verification_doc", "BankVerification"),
		}),
	)
	require.NoError(t, err)
	return p
}

// snapshot builds the scenario from the acceptance examples: E1 with two
// qualifying bank accounts, E2 with one compliance doc, T1 with no supplier
// link, T2 matching only an inactive ledger entry.
func snapshot() *records.Snapshot {
	return &records.Snapshot{
		Workers: []records.Worker{
			{ID: "E1", FirstName: "Ada", LastName: "Lovelace", BusinessUnit: "FR01",
				WorkerType: "Freelancer", EngagementStatus: "Engaged", AgreementType: "Standard", Active: true},
			{ID: "E2", FirstName: "Alan", LastName: "Turing", BusinessUnit: "DE02",
				WorkerType: "Freelancer", EngagementStatus: "Engaged", AgreementType: "", Active: true},
			{ID: "E3", FirstName: "Grace", LastName: "Hopper", BusinessUnit: "FR01",
				WorkerType: "Freelancer", EngagementStatus: "Engaged", AgreementType: "Standard", Active: true},
			{ID: "E4", FirstName: "Out", LastName: "OfScope", BusinessUnit: "US99",
				WorkerType: "Freelancer", EngagementStatus: "Engaged", AgreementType: "Standard", Active: true},
		},
		BankAccounts: []records.BankAccount{
			{ID: 10, WorkerID: "E1", Purpose: "Invoices", UpdatedAt: at(1), IBAN: "IBAN-10"},
			{ID: 15, WorkerID: "E1", Purpose: "Invoices", UpdatedAt: at(1), IBAN: "IBAN-15"},
		},
		Addresses: []records.AddressLink{
			{ID: 20, WorkerID: "E1", AddressType: "Invoicing", City: "Paris", UpdatedAt: at(2)},
		},
		ComplianceDocs: []records.ComplianceDoc{
			{ID: 30, WorkerID: "E2", CategoryLabel: "Incorporation"},
		},
		Invoices: []records.Invoice{
			{ID: 2, WorkerID: "E1", CrossRef: "INV-002"}, // T2: inactive match only
			{ID: 1, WorkerID: "E3", CrossRef: "INV-001"}, // T1: no supplier link
		},
		Ledger: []records.LedgerEntry{
			{CrossRef: "INV-002", SupplierKey: 9001, StatusCode: "30", Active: false, UpdatedAt: at(4)},
		},
		SupplierLinks: []records.SupplierLinkEvent{
			{WorkerID: "E1", SupplierKey: 9001, CreatedAt: at(1), UpdatedAt: at(1)},
		},
		StatusDictionary: []records.StatusEntry{
			{Domain: "INVOICE", Code: "30", Label: "Paid"},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	logging.DisableLoggingForTest(t)
	p := newPipeline(t)

	result, err := p.Run(context.Background(), snapshot())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.RunID)

	// E4 is outside the business-unit allow-list
	require.Len(t, result.Profiles, 3)
	assert.Equal(t, records.WorkerID("E1"), result.Profiles[0].WorkerID)
	assert.Equal(t, records.WorkerID("E2"), result.Profiles[1].WorkerID)
	assert.Equal(t, records.WorkerID("E3"), result.Profiles[2].WorkerID)

	// E1: canonical bank account is id 15 (tie on date, higher id wins)
	e1 := result.Profiles[0]
	require.NotNil(t, e1.IBAN)
	assert.Equal(t, "IBAN-15", *e1.IBAN)
	require.NotNil(t, e1.City)
	assert.Equal(t, "Paris", *e1.City)

	// E2: incorporation doc sets its flag, bank verification stays false
	e2 := result.Profiles[1]
	assert.True(t, e2.Flags["has_incorporation_doc"])
	assert.False(t, e2.Flags["has_bank_verification_doc"])
	assert.Nil(t, e2.IBAN)

	// T1 (invoice 1) is retained with absent ledger fields; T2 (invoice 2)
	// matched only a superseded entry and is dropped
	require.Len(t, result.Invoices, 1)
	assert.Equal(t, records.InvoiceID(1), result.Invoices[0].InvoiceID)
	assert.False(t, result.Invoices[0].Matched())

	assert.Equal(t, 1, result.Stats.Match.DroppedInactive)
	assert.Equal(t, 4, result.Stats.WorkersTotal)
	assert.Equal(t, 3, result.Stats.WorkersEligible)
}

func TestRunIdempotent(t *testing.T) {
	logging.DisableLoggingForTest(t)
	p := newPipeline(t)

	first, err := p.Run(context.Background(), snapshot())
	require.NoError(t, err)
	second, err := p.Run(context.Background(), snapshot())
	require.NoError(t, err)

	// Byte-identical output relations for byte-identical snapshots
	firstProfiles, err := yaml.Marshal(first.Profiles)
	require.NoError(t, err)
	secondProfiles, err := yaml.Marshal(second.Profiles)
	require.NoError(t, err)
	assert.Equal(t, firstProfiles, secondProfiles)

	firstInvoices, err := yaml.Marshal(first.Invoices)
	require.NoError(t, err)
	secondInvoices, err := yaml.Marshal(second.Invoices)
	require.NoError(t, err)
	assert.Equal(t, firstInvoices, secondInvoices)
}

func TestRunAbortsOnSchemaViolation(t *testing.T) {
	logging.DisableLoggingForTest(t)
	p := newPipeline(t)

	snap := snapshot()
	snap.Invoices[0].CrossRef = ""

	result, err := p.Run(context.Background(), snap)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRunHonorsCancellation(t *testing.T) {
	logging.DisableLoggingForTest(t)
	p := newPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Run(ctx, snapshot())
	assert.Nil(t, result)
	assert.True(t, errors.IsCanceled(err))
}

func TestRunSurfacesFanOutWarnings(t *testing.T) {
	logging.DisableLoggingForTest(t)
	p := newPipeline(t)

	snap := snapshot()
	snap.Ledger = append(snap.Ledger,
		records.LedgerEntry{CrossRef: "INV-002", SupplierKey: 9001, StatusCode: "10", Active: true, UpdatedAt: at(5)},
		records.LedgerEntry{CrossRef: "INV-002", SupplierKey: 9001, StatusCode: "30", Active: true, UpdatedAt: at(6)},
	)

	result, err := p.Run(context.Background(), snap)
	require.NoError(t, err)

	assert.True(t, result.HasWarnings())
	assert.Equal(t, 1, result.Stats.Match.FanOuts)
	assert.Contains(t, result.Summary(), "warnings")
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  pipeline.Option
	}{
		{"empty bank purpose", pipeline.WithBankPurpose("")},
		{"empty address type", pipeline.WithAddressType("")},
		{"empty status domain", pipeline.WithStatusDomain("")},
		{"eligibility without worker type", pipeline.WithEligibility(profile.Eligibility{})},
		{"unnamed flag", pipeline.WithFlags(flags.Set{{Name: ""}})},
		{"duplicate flag", pipeline.WithFlags(flags.Set{
			flags.LabelFlag("dup", "A"),
			flags.LabelFlag("dup", "B"),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pipeline.New(tt.opt)
			require.Error(t, err)

			var cfgErr *errors.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}
