// Package resolve collapses the 1:N child relations of a worker into single
// canonical records: the bank account used for invoicing and the billing
// address. Candidates are pre-filtered to the relevant sub-type, disabled
// records are excluded, and the survivor per worker is chosen by recency with
// the record's surrogate ID as the deterministic tie-break.
package resolve

import (
	"github.com/talentops/ledgerlens/pkg/rank"
	"github.com/talentops/ledgerlens/pkg/records"
)

// BankAccounts resolves the canonical invoicing bank account per worker.
// Only enabled accounts whose purpose matches the given label qualify; the
// most recently updated account wins, higher record ID breaking ties.
// Workers with no qualifying account are absent from the result.
func BankAccounts(purpose string, accounts []records.BankAccount) map[records.WorkerID]records.BankAccount {
	candidates := rank.Filter(accounts, func(a records.BankAccount) bool {
		return !a.Disabled && a.Purpose == purpose
	})

	return rank.Top1PerGroup(candidates,
		func(a records.BankAccount) records.WorkerID { return a.WorkerID },
		betterBankAccount)
}

// Addresses resolves the canonical billing address per worker, using the
// same recency-then-ID ordering as BankAccounts.
func Addresses(addressType string, links []records.AddressLink) map[records.WorkerID]records.AddressLink {
	candidates := rank.Filter(links, func(l records.AddressLink) bool {
		return l.AddressType == addressType
	})

	return rank.Top1PerGroup(candidates,
		func(l records.AddressLink) records.WorkerID { return l.WorkerID },
		betterAddress)
}

// betterBankAccount orders by (UpdatedAt desc, ID desc). The ID leg makes
// the ordering strict when two accounts share a timestamp.
func betterBankAccount(c, i records.BankAccount) bool {
	if !c.UpdatedAt.Time.Equal(i.UpdatedAt.Time) {
		return c.UpdatedAt.Time.After(i.UpdatedAt.Time)
	}
	return c.ID > i.ID
}

func betterAddress(c, i records.AddressLink) bool {
	if !c.UpdatedAt.Time.Equal(i.UpdatedAt.Time) {
		return c.UpdatedAt.Time.After(i.UpdatedAt.Time)
	}
	return c.ID > i.ID
}
