package records_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/ledgerlens/pkg/errors"
	"github.com/talentops/ledgerlens/pkg/records"
)

func TestLoadFullSnapshot(t *testing.T) {
	fsys := fstest.MapFS{
		"workers.yaml": {Data: []byte(`
- id: W-1
  first_name: Ada
  last_name: Lovelace
  business_unit: FR01
  worker_type: Freelancer
  engagement_status: Engaged
  agreement_type: Standard
  active: true
`)},
		"bank_accounts.yaml": {Data: []byte(`
- id: 10
  worker_id: W-1
  purpose: Invoices
  disabled: false
  bank_name: Example Bank
  bic: EXAMFRPP
  iban: FR7630006000011234567890189
  banking_system: SEPA
  updated_at: 2024-05-01T10:00:00Z
`)},
		"invoices.yaml": {Data: []byte(`
- id: 100
  worker_id: W-1
  cross_ref: INV-001
  draft: false
  amount: 1200.50
  currency: EUR
  issued_at: 2024-05-02T00:00:00Z
  due_at: 2024-06-01T00:00:00Z
`)},
		"ledger.yaml": {Data: []byte(`
- cross_ref: INV-001
  supplier_key: 9001
  status_code: "30"
  active: true
  gross_amount: 1200.50
  net_amount: 1000.42
  booked_at: 2024-05-03T00:00:00Z
  updated_at: 2024-05-03T00:00:00Z
`)},
		"status_dictionary.yaml": {Data: []byte(`
- domain: INVOICE
  code: "30"
  label: Paid
`)},
	}

	snap, err := records.Load(fsys)
	require.NoError(t, err)

	assert.Len(t, snap.Workers, 1)
	assert.Equal(t, records.WorkerID("W-1"), snap.Workers[0].ID)
	assert.Len(t, snap.BankAccounts, 1)
	assert.Equal(t, "EXAMFRPP", snap.BankAccounts[0].BIC)
	assert.Len(t, snap.Invoices, 1)
	assert.Equal(t, records.InvoiceID(100), snap.Invoices[0].ID)
	assert.Len(t, snap.Ledger, 1)
	assert.True(t, snap.Ledger[0].Active)
	assert.Len(t, snap.StatusDictionary, 1)

	// Files that weren't present load as empty relations
	assert.Empty(t, snap.Addresses)
	assert.Empty(t, snap.ComplianceDocs)
	assert.Empty(t, snap.SupplierLinks)
}

func TestLoadMissingFilesIsEmptySnapshot(t *testing.T) {
	snap, err := records.Load(fstest.MapFS{})
	require.NoError(t, err)
	assert.Empty(t, snap.Workers)
	assert.Empty(t, snap.Invoices)
}

func TestLoadMalformedYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"workers.yaml": {Data: []byte("workers: [not a list of workers")},
	}

	_, err := records.Load(fsys)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "workers.yaml", parseErr.File)
}
