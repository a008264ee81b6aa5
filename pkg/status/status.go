// Package status translates opaque ledger status codes into display labels
// using the status dictionary, scoped to a single record-type domain. The
// dictionary is external reference data that can lag behind newly introduced
// codes, so a missing entry is an absent label, never an error.
package status

import (
	"github.com/talentops/ledgerlens/pkg/records"
)

// Translator is a pure (code → label) lookup for one record-type domain.
type Translator struct {
	domain string
	labels map[string]string
}

// NewTranslator builds a translator from dictionary entries, keeping only
// those scoped to the given domain.
func NewTranslator(entries []records.StatusEntry, domain string) *Translator {
	labels := make(map[string]string)
	for _, e := range entries {
		if e.Domain == domain {
			labels[e.Code] = e.Label
		}
	}
	return &Translator{domain: domain, labels: labels}
}

// Domain returns the record-type domain this translator is scoped to.
func (t *Translator) Domain() string {
	return t.domain
}

// Lookup returns the display label for a status code. The second return is
// false when the dictionary has no entry for the code in this domain;
// callers must treat that as "no label available".
func (t *Translator) Lookup(code string) (string, bool) {
	label, ok := t.labels[code]
	return label, ok
}

// Size returns the number of codes known to this translator.
func (t *Translator) Size() int {
	return len(t.labels)
}
