// Package match implements the cross-system reconciliation of internal
// invoices against the external ledger. Invoices join to ledger entries on
// the composite key (cross-system reference, mapped supplier key); orphan
// invoices are retained with absent ledger fields, invoices whose only match
// is a superseded ledger version are dropped, and a key matching more than
// one active entry is surfaced as a data-quality warning instead of being
// silently absorbed.
package match

import (
	"sort"

	"github.com/agentstation/utc"

	"github.com/talentops/ledgerlens/pkg/errors"
	"github.com/talentops/ledgerlens/pkg/records"
	"github.com/talentops/ledgerlens/pkg/status"
	"github.com/talentops/ledgerlens/pkg/supplier"
)

// ReconciledInvoice is one output row: an internal invoice left-enriched
// with its matched ledger entry, if any. Pointer fields are nil when there
// is no match (or no dictionary label); absence is data, not an error.
type ReconciledInvoice struct {
	InvoiceID       records.InvoiceID    `json:"invoice_id" yaml:"invoice_id"`
	WorkerID        records.WorkerID     `json:"worker_id" yaml:"worker_id"`
	CrossRef        string               `json:"cross_ref" yaml:"cross_ref"`
	SupplierKey     *records.SupplierKey `json:"supplier_key,omitempty" yaml:"supplier_key,omitempty"`
	StatusCode      *string              `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	StatusLabel     *string              `json:"status_label,omitempty" yaml:"status_label,omitempty"`
	GrossAmount     *float64             `json:"gross_amount,omitempty" yaml:"gross_amount,omitempty"`
	NetAmount       *float64             `json:"net_amount,omitempty" yaml:"net_amount,omitempty"`
	BookedAt        *utc.Time            `json:"booked_at,omitempty" yaml:"booked_at,omitempty"`
	Amount          float64              `json:"amount" yaml:"amount"`
	Currency        string               `json:"currency" yaml:"currency"`
	RejectionReason string               `json:"rejection_reason,omitempty" yaml:"rejection_reason,omitempty"`
	Draft           bool                 `json:"draft" yaml:"draft"`
	IssuedAt        utc.Time             `json:"issued_at" yaml:"issued_at"`
	DueAt           utc.Time             `json:"due_at" yaml:"due_at"`
}

// Matched reports whether the invoice found an active ledger counterpart.
func (r *ReconciledInvoice) Matched() bool {
	return r.GrossAmount != nil
}

// Stats counts what happened to each invoice during reconciliation.
type Stats struct {
	Invoices        int `json:"invoices" yaml:"invoices"`
	Matched         int `json:"matched" yaml:"matched"`
	Unmatched       int `json:"unmatched" yaml:"unmatched"`
	DroppedInactive int `json:"dropped_inactive" yaml:"dropped_inactive"`
	FanOuts         int `json:"fan_outs" yaml:"fan_outs"`
	Untranslated    int `json:"untranslated" yaml:"untranslated"`
}

// Result carries the reconciled rows plus the data-quality findings of the
// run. Warnings hold one FanOutError per key that matched multiple active
// ledger entries; the row count contract still holds because the matcher
// keeps exactly one deterministic row per invoice.
type Result struct {
	Rows     []ReconciledInvoice
	Stats    Stats
	Warnings []error
}

// ledgerKey is the composite business key joining the two systems.
type ledgerKey struct {
	crossRef    string
	supplierKey records.SupplierKey
}

// Reconcile matches every invoice against the ledger. Output rows are
// ordered by invoice ID ascending; the count equals the number of invoices
// minus those whose only ledger match was inactive.
func Reconcile(
	invoices []records.Invoice,
	ledger []records.LedgerEntry,
	mappings map[records.WorkerID]supplier.Mapping,
	translator *status.Translator,
) *Result {
	index := indexLedger(ledger)

	result := &Result{Stats: Stats{Invoices: len(invoices)}}

	for _, inv := range invoices {
		row := baseRow(inv)

		mapping, mapped := mappings[inv.WorkerID]
		if mapped {
			key := mapping.SupplierKey
			row.SupplierKey = &key
		}

		var entries []records.LedgerEntry
		if mapped {
			entries = index[ledgerKey{crossRef: inv.CrossRef, supplierKey: mapping.SupplierKey}]
		}

		// Retention filter, applied after the join: keep the invoice when an
		// active entry matched or when nothing matched at all. An invoice
		// whose every match is superseded would otherwise show up duplicated
		// across historized ledger versions.
		active := activeEntries(entries)
		switch {
		case len(active) == 0 && len(entries) > 0:
			result.Stats.DroppedInactive++
			continue
		case len(active) == 0:
			result.Stats.Unmatched++
		default:
			if len(active) > 1 {
				result.Stats.FanOuts++
				result.Warnings = append(result.Warnings, &errors.FanOutError{
					InvoiceID:   int64(inv.ID),
					CrossRef:    inv.CrossRef,
					SupplierKey: int64(mapping.SupplierKey),
					Matches:     len(active),
				})
			}
			entry := pickEntry(active)
			enrich(&row, entry, translator, &result.Stats)
			result.Stats.Matched++
		}

		result.Rows = append(result.Rows, row)
	}

	sort.Slice(result.Rows, func(i, j int) bool {
		return result.Rows[i].InvoiceID < result.Rows[j].InvoiceID
	})

	return result
}

// indexLedger builds the composite-key index over the ledger.
func indexLedger(ledger []records.LedgerEntry) map[ledgerKey][]records.LedgerEntry {
	index := make(map[ledgerKey][]records.LedgerEntry, len(ledger))
	for _, e := range ledger {
		key := ledgerKey{crossRef: e.CrossRef, supplierKey: e.SupplierKey}
		index[key] = append(index[key], e)
	}
	return index
}

func activeEntries(entries []records.LedgerEntry) []records.LedgerEntry {
	var active []records.LedgerEntry
	for _, e := range entries {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}

// pickEntry selects the single entry to enrich from when the uniqueness
// assumption is violated: most recently updated wins, latest booking date
// breaking ties. The violation itself is already recorded as a warning.
func pickEntry(active []records.LedgerEntry) records.LedgerEntry {
	best := active[0]
	for _, e := range active[1:] {
		if e.UpdatedAt.Time.After(best.UpdatedAt.Time) {
			best = e
			continue
		}
		if e.UpdatedAt.Time.Equal(best.UpdatedAt.Time) && e.BookedAt.Time.After(best.BookedAt.Time) {
			best = e
		}
	}
	return best
}

func baseRow(inv records.Invoice) ReconciledInvoice {
	return ReconciledInvoice{
		InvoiceID:       inv.ID,
		WorkerID:        inv.WorkerID,
		CrossRef:        inv.CrossRef,
		Amount:          inv.Amount,
		Currency:        inv.Currency,
		RejectionReason: inv.RejectionReason,
		Draft:           inv.Draft,
		IssuedAt:        inv.IssuedAt,
		DueAt:           inv.DueAt,
	}
}

func enrich(row *ReconciledInvoice, entry records.LedgerEntry, translator *status.Translator, stats *Stats) {
	code := entry.StatusCode
	gross := entry.GrossAmount
	net := entry.NetAmount
	booked := entry.BookedAt

	row.StatusCode = &code
	row.GrossAmount = &gross
	row.NetAmount = &net
	row.BookedAt = &booked

	if label, ok := translator.Lookup(entry.StatusCode); ok {
		row.StatusLabel = &label
	} else {
		stats.Untranslated++
	}
}
