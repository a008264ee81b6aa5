// Package records defines the input relations consumed by a ledgerlens
// pipeline run: the master worker set, its child relations, the internal
// invoice set, the external ledger, and static reference data. All records
// are immutable snapshots; the pipeline never mutates them in place.
package records

import (
	"github.com/agentstation/utc"
)

// WorkerID uniquely identifies a worker in the master set
type WorkerID string

// String returns the string representation of a worker ID
func (id WorkerID) String() string {
	return string(id)
}

// RecordID is the surrogate identifier of a child record. IDs are unique
// within a relation and monotonically increasing at insertion time.
type RecordID int64

// InvoiceID uniquely identifies an internal invoice
type InvoiceID int64

// SupplierKey is the external ledger system's supplier identifier
type SupplierKey int64

// Worker is the master record this pipeline enriches. One row per unique
// identity; read-only input, never created or mutated by this system.
type Worker struct {
	ID               WorkerID `json:"id" yaml:"id"`
	FirstName        string   `json:"first_name" yaml:"first_name"`
	LastName         string   `json:"last_name" yaml:"last_name"`
	BusinessUnit     string   `json:"business_unit" yaml:"business_unit"`
	WorkerType       string   `json:"worker_type" yaml:"worker_type"`
	EngagementStatus string   `json:"engagement_status" yaml:"engagement_status"`
	AgreementType    string   `json:"agreement_type" yaml:"agreement_type"`
	Active           bool     `json:"active" yaml:"active"`
}

// BankAccount is a child record of Worker. A worker may hold several
// accounts; at most one per purpose becomes canonical.
type BankAccount struct {
	ID            RecordID `json:"id" yaml:"id"`
	WorkerID      WorkerID `json:"worker_id" yaml:"worker_id"`
	Purpose       string   `json:"purpose" yaml:"purpose"` // e.g. "Invoices", "Expenses"
	Disabled      bool     `json:"disabled" yaml:"disabled"`
	BankName      string   `json:"bank_name" yaml:"bank_name"`
	BIC           string   `json:"bic" yaml:"bic"`
	IBAN          string   `json:"iban" yaml:"iban"`
	BankingSystem string   `json:"banking_system" yaml:"banking_system"`
	UpdatedAt     utc.Time `json:"updated_at" yaml:"updated_at"`
}

// AddressLink is a child record of Worker carrying one normalized address
// per address type.
type AddressLink struct {
	ID          RecordID `json:"id" yaml:"id"`
	WorkerID    WorkerID `json:"worker_id" yaml:"worker_id"`
	AddressType string   `json:"address_type" yaml:"address_type"` // e.g. "Invoicing", "Residence"
	Street      string   `json:"street" yaml:"street"`
	ZipCode     string   `json:"zip_code" yaml:"zip_code"`
	City        string   `json:"city" yaml:"city"`
	Country     string   `json:"country" yaml:"country"`
	UpdatedAt   utc.Time `json:"updated_at" yaml:"updated_at"`
}

// ComplianceDoc is a child record of Worker. Existence of qualifying
// documents per category pivots into boolean flags on the profile.
type ComplianceDoc struct {
	ID            RecordID `json:"id" yaml:"id"`
	WorkerID      WorkerID `json:"worker_id" yaml:"worker_id"`
	CategoryID    int64    `json:"category_id" yaml:"category_id"`
	CategoryLabel string   `json:"category_label" yaml:"category_label"` // e.g. "Incorporation"
	Disabled      bool     `json:"disabled" yaml:"disabled"`
}

// Invoice is an internal invoice submission, keyed by InvoiceID and carrying
// the cross-system reference code used for ledger matching.
type Invoice struct {
	ID              InvoiceID `json:"id" yaml:"id"`
	WorkerID        WorkerID  `json:"worker_id" yaml:"worker_id"`
	CrossRef        string    `json:"cross_ref" yaml:"cross_ref"`
	Draft           bool      `json:"draft" yaml:"draft"`
	Amount          float64   `json:"amount" yaml:"amount"`
	Currency        string    `json:"currency" yaml:"currency"`
	RejectionReason string    `json:"rejection_reason,omitempty" yaml:"rejection_reason,omitempty"`
	IssuedAt        utc.Time  `json:"issued_at" yaml:"issued_at"`
	DueAt           utc.Time  `json:"due_at" yaml:"due_at"`
}

// LedgerEntry is the external system's historized financial record, keyed by
// (CrossRef, SupplierKey). Superseded versions carry Active=false.
type LedgerEntry struct {
	CrossRef    string      `json:"cross_ref" yaml:"cross_ref"`
	SupplierKey SupplierKey `json:"supplier_key" yaml:"supplier_key"`
	StatusCode  string      `json:"status_code" yaml:"status_code"`
	Active      bool        `json:"active" yaml:"active"`
	GrossAmount float64     `json:"gross_amount" yaml:"gross_amount"`
	NetAmount   float64     `json:"net_amount" yaml:"net_amount"`
	BookedAt    utc.Time    `json:"booked_at" yaml:"booked_at"`
	UpdatedAt   utc.Time    `json:"updated_at" yaml:"updated_at"`
}

// SupplierLinkEvent records one observed association between a worker and an
// external supplier key. The log may hold conflicting historical values.
type SupplierLinkEvent struct {
	WorkerID    WorkerID    `json:"worker_id" yaml:"worker_id"`
	SupplierKey SupplierKey `json:"supplier_key" yaml:"supplier_key"`
	CreatedAt   utc.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt   utc.Time    `json:"updated_at" yaml:"updated_at"`
}

// StatusEntry maps a status code to a display label within a record-type
// domain. Static reference data that can lag behind newly introduced codes.
type StatusEntry struct {
	Domain string `json:"domain" yaml:"domain"`
	Code   string `json:"code" yaml:"code"`
	Label  string `json:"label" yaml:"label"`
}

// Snapshot is one immutable input snapshot: every relation the pipeline
// reads, fully materialized before computation begins.
type Snapshot struct {
	Workers          []Worker            `json:"workers" yaml:"workers"`
	BankAccounts     []BankAccount       `json:"bank_accounts" yaml:"bank_accounts"`
	Addresses        []AddressLink       `json:"addresses" yaml:"addresses"`
	ComplianceDocs   []ComplianceDoc     `json:"compliance_docs" yaml:"compliance_docs"`
	Invoices         []Invoice           `json:"invoices" yaml:"invoices"`
	Ledger           []LedgerEntry       `json:"ledger" yaml:"ledger"`
	SupplierLinks    []SupplierLinkEvent `json:"supplier_links" yaml:"supplier_links"`
	StatusDictionary []StatusEntry       `json:"status_dictionary" yaml:"status_dictionary"`
}
