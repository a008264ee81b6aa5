// Package constants provides shared constants used throughout the ledgerlens codebase.
// This includes snapshot file names, default configuration values, and file
// permissions that should be consistent across the application.
package constants

import "time"

// Snapshot file names inside an input snapshot directory.
const (
	// WorkersFile holds the master worker relation
	WorkersFile = "workers.yaml"

	// BankAccountsFile holds the bank account child relation
	BankAccountsFile = "bank_accounts.yaml"

	// AddressesFile holds the address link child relation
	AddressesFile = "addresses.yaml"

	// ComplianceDocsFile holds the compliance document child relation
	ComplianceDocsFile = "compliance_docs.yaml"

	// InvoicesFile holds the internal invoice relation
	InvoicesFile = "invoices.yaml"

	// LedgerFile holds the external ledger relation
	LedgerFile = "ledger.yaml"

	// SupplierLinksFile holds the supplier-link event log
	SupplierLinksFile = "supplier_links.yaml"

	// StatusDictionaryFile holds the status code dictionary
	StatusDictionaryFile = "status_dictionary.yaml"
)

// Output file names written by the run command.
const (
	// ProfilesOutputFile is the enriched worker profile relation
	ProfilesOutputFile = "worker_profiles.yaml"

	// ReconciledOutputFile is the reconciled invoice relation
	ReconciledOutputFile = "reconciled_invoices.yaml"
)

// Default configuration values. The config package exposes all of these as
// overridable settings; the defaults match the standard pipeline deployment.
const (
	// DefaultBankPurpose is the account purpose that counts as canonical
	DefaultBankPurpose = "Invoices"

	// DefaultAddressType is the address type that counts as canonical
	DefaultAddressType = "Invoicing"

	// DefaultStatusDomain scopes status dictionary lookups to invoice records
	DefaultStatusDomain = "INVOICE"

	// DefaultWorkerType is the worker type in scope for profile enrichment
	DefaultWorkerType = "Freelancer"

	// DefaultStandardAgreement is the agreement type treated as standard
	DefaultStandardAgreement = "Standard"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants define various timeout durations used in the application
const (
	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)
