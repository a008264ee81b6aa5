package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/ledgerlens/internal/config"
	"github.com/talentops/ledgerlens/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "Freelancer", cfg.WorkerType)
	assert.Equal(t, "Invoices", cfg.BankPurpose)
	assert.Equal(t, "Invoicing", cfg.AddressType)
	assert.Equal(t, "INVOICE", cfg.StatusDomain)
	assert.Equal(t, "Standard", cfg.StandardAgreement)
	assert.NotEmpty(t, cfg.BusinessUnits)
	assert.NotEmpty(t, cfg.EngagementStatuses)
	assert.Contains(t, cfg.DocFlags, "has_incorporation_doc")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
business_units:
  - UK03
worker_type: Contractor
engagement_statuses:
  - Active
standard_agreement: Framework
bank_purpose: Payouts
address_type: Billing
status_domain: PAYOUT
doc_flags:
  has_identity_doc: Identity
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"UK03"}, cfg.BusinessUnits)
	assert.Equal(t, "Contractor", cfg.WorkerType)
	assert.Equal(t, "Payouts", cfg.BankPurpose)
	assert.Equal(t, "Billing", cfg.AddressType)
	assert.Equal(t, "PAYOUT", cfg.StatusDomain)
	assert.Equal(t, map[string]string{"has_identity_doc": "Identity"}, cfg.DocFlags)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadRejectsEmptyAllowList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("business_units: []\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "business_units", cfgErr.Component)
}

func TestFlagSetStableOrder(t *testing.T) {
	cfg := &config.Config{
		DocFlags: map[string]string{
			"zeta":  "Z",
			"alpha": "A",
			"mid":   "M",
		},
	}

	set := cfg.FlagSet()
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, set.Names())
}

func TestPipelineOptionsApplyCleanly(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	opts := cfg.PipelineOptions()
	assert.Len(t, opts, 5)
}
