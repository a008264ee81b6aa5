package records

import (
	"github.com/talentops/ledgerlens/pkg/errors"
)

// Validate checks the snapshot against the minimum required schema. A
// violation here is the one fatal condition of the pipeline: the run must
// abort rather than produce partially-enriched output. Missing relations
// (empty slices) are fine; rows with missing required fields are not.
func (s *Snapshot) Validate() error {
	if err := s.validateWorkers(); err != nil {
		return err
	}
	if err := s.validateBankAccounts(); err != nil {
		return err
	}
	if err := s.validateAddresses(); err != nil {
		return err
	}
	if err := s.validateComplianceDocs(); err != nil {
		return err
	}
	if err := s.validateInvoices(); err != nil {
		return err
	}
	if err := s.validateLedger(); err != nil {
		return err
	}
	if err := s.validateSupplierLinks(); err != nil {
		return err
	}
	return s.validateStatusDictionary()
}

func (s *Snapshot) validateWorkers() error {
	seen := make(map[WorkerID]struct{}, len(s.Workers))
	for i, w := range s.Workers {
		if w.ID == "" {
			return errors.NewValidationError("workers", "id", i, "must not be empty")
		}
		if _, dup := seen[w.ID]; dup {
			return errors.NewValidationError("workers", "id", i, "duplicate worker id "+w.ID.String())
		}
		seen[w.ID] = struct{}{}
	}
	return nil
}

func (s *Snapshot) validateBankAccounts() error {
	for i, a := range s.BankAccounts {
		if a.ID == 0 {
			return errors.NewValidationError("bank_accounts", "id", i, "must not be zero")
		}
		if a.WorkerID == "" {
			return errors.NewValidationError("bank_accounts", "worker_id", i, "must not be empty")
		}
	}
	return nil
}

func (s *Snapshot) validateAddresses() error {
	for i, a := range s.Addresses {
		if a.ID == 0 {
			return errors.NewValidationError("addresses", "id", i, "must not be zero")
		}
		if a.WorkerID == "" {
			return errors.NewValidationError("addresses", "worker_id", i, "must not be empty")
		}
	}
	return nil
}

func (s *Snapshot) validateComplianceDocs() error {
	for i, d := range s.ComplianceDocs {
		if d.WorkerID == "" {
			return errors.NewValidationError("compliance_docs", "worker_id", i, "must not be empty")
		}
		if d.CategoryLabel == "" {
			return errors.NewValidationError("compliance_docs", "category_label", i, "must not be empty")
		}
	}
	return nil
}

func (s *Snapshot) validateInvoices() error {
	seen := make(map[InvoiceID]struct{}, len(s.Invoices))
	for i, inv := range s.Invoices {
		if inv.ID == 0 {
			return errors.NewValidationError("invoices", "id", i, "must not be zero")
		}
		if _, dup := seen[inv.ID]; dup {
			return errors.NewValidationError("invoices", "id", i, "duplicate invoice id")
		}
		seen[inv.ID] = struct{}{}
		if inv.WorkerID == "" {
			return errors.NewValidationError("invoices", "worker_id", i, "must not be empty")
		}
		if inv.CrossRef == "" {
			return errors.NewValidationError("invoices", "cross_ref", i, "must not be empty")
		}
	}
	return nil
}

func (s *Snapshot) validateLedger() error {
	for i, e := range s.Ledger {
		if e.CrossRef == "" {
			return errors.NewValidationError("ledger", "cross_ref", i, "must not be empty")
		}
		if e.SupplierKey == 0 {
			return errors.NewValidationError("ledger", "supplier_key", i, "must not be zero")
		}
	}
	return nil
}

func (s *Snapshot) validateSupplierLinks() error {
	for i, e := range s.SupplierLinks {
		if e.WorkerID == "" {
			return errors.NewValidationError("supplier_links", "worker_id", i, "must not be empty")
		}
		if e.SupplierKey == 0 {
			return errors.NewValidationError("supplier_links", "supplier_key", i, "must not be zero")
		}
	}
	return nil
}

func (s *Snapshot) validateStatusDictionary() error {
	for i, e := range s.StatusDictionary {
		if e.Domain == "" {
			return errors.NewValidationError("status_dictionary", "domain", i, "must not be empty")
		}
		if e.Code == "" {
			return errors.NewValidationError("status_dictionary", "code", i, "must not be empty")
		}
	}
	return nil
}
