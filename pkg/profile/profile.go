// Package profile assembles the enriched worker profile: the master worker
// set filtered to eligible workers, outer-merged with the canonical bank
// account, canonical address, and compliance flags at worker grain. Defaults
// are substituted in one place — flags to false, enrichment fields to absent
// — so the 1:1 grain contract stays centrally enforced and testable.
//
// The assembler performs no deduplication. Every joined feature source must
// already be reduced to at most one row per worker; upstream components own
// that contract.
package profile

import (
	"sort"

	"github.com/talentops/ledgerlens/pkg/flags"
	"github.com/talentops/ledgerlens/pkg/records"
)

// Eligibility holds the entity filter applied to the master worker set
// before assembly. All values come from configuration.
type Eligibility struct {
	// WorkerType is the single worker type in scope
	WorkerType string

	// EngagementStatuses is the set of statuses in scope
	EngagementStatuses []string

	// BusinessUnits is the authorized business-unit allow-list
	BusinessUnits []string

	// StandardAgreement is the agreement type considered standard. A worker
	// with an empty agreement type falls back to standard and stays eligible.
	StandardAgreement string
}

// Eligible reports whether a worker passes the entity filter.
func (e Eligibility) Eligible(w records.Worker) bool {
	if !w.Active {
		return false
	}
	if w.WorkerType != e.WorkerType {
		return false
	}
	if !contains(e.EngagementStatuses, w.EngagementStatus) {
		return false
	}
	if !contains(e.BusinessUnits, w.BusinessUnit) {
		return false
	}
	return w.AgreementType == e.StandardAgreement || w.AgreementType == ""
}

// WorkerProfile is one output row: a worker enriched with canonical child
// record fields and compliance flags. Pointer fields are nil when the worker
// has no qualifying child record.
type WorkerProfile struct {
	WorkerID     records.WorkerID `json:"worker_id" yaml:"worker_id"`
	FirstName    string           `json:"first_name" yaml:"first_name"`
	LastName     string           `json:"last_name" yaml:"last_name"`
	BusinessUnit string           `json:"business_unit" yaml:"business_unit"`

	// Canonical invoicing bank account
	BankName      *string `json:"bank_name,omitempty" yaml:"bank_name,omitempty"`
	BIC           *string `json:"bic,omitempty" yaml:"bic,omitempty"`
	IBAN          *string `json:"iban,omitempty" yaml:"iban,omitempty"`
	BankingSystem *string `json:"banking_system,omitempty" yaml:"banking_system,omitempty"`

	// Canonical billing address
	Street  *string `json:"street,omitempty" yaml:"street,omitempty"`
	ZipCode *string `json:"zip_code,omitempty" yaml:"zip_code,omitempty"`
	City    *string `json:"city,omitempty" yaml:"city,omitempty"`
	Country *string `json:"country,omitempty" yaml:"country,omitempty"`

	// Compliance flags, one entry per configured flag, never missing
	Flags flags.Row `json:"flags" yaml:"flags"`
}

// Assemble merges the feature tables onto the eligible worker set. Output is
// ordered by worker ID ascending and contains exactly one row per eligible
// worker.
func Assemble(
	eligibility Eligibility,
	flagSet flags.Set,
	workers []records.Worker,
	canonicalBank map[records.WorkerID]records.BankAccount,
	canonicalAddr map[records.WorkerID]records.AddressLink,
	flagRows map[records.WorkerID]flags.Row,
) []WorkerProfile {
	var profiles []WorkerProfile

	for _, w := range workers {
		if !eligibility.Eligible(w) {
			continue
		}

		p := WorkerProfile{
			WorkerID:     w.ID,
			FirstName:    w.FirstName,
			LastName:     w.LastName,
			BusinessUnit: w.BusinessUnit,
			Flags:        flagSet.EmptyRow(),
		}

		if bank, ok := canonicalBank[w.ID]; ok {
			p.BankName = ptr(bank.BankName)
			p.BIC = ptr(bank.BIC)
			p.IBAN = ptr(bank.IBAN)
			p.BankingSystem = ptr(bank.BankingSystem)
		}

		if addr, ok := canonicalAddr[w.ID]; ok {
			p.Street = ptr(addr.Street)
			p.ZipCode = ptr(addr.ZipCode)
			p.City = ptr(addr.City)
			p.Country = ptr(addr.Country)
		}

		if row, ok := flagRows[w.ID]; ok {
			for name, value := range row {
				p.Flags[name] = value
			}
		}

		profiles = append(profiles, p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].WorkerID < profiles[j].WorkerID
	})

	return profiles
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T {
	return &v
}
