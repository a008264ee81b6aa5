package records

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/talentops/ledgerlens/pkg/constants"
	"github.com/talentops/ledgerlens/pkg/errors"
)

// Load reads a snapshot from the given filesystem. Each relation lives in
// its own YAML file; a missing file yields an empty relation, not an error,
// so partial snapshots can be used in tests and dry runs. Loading performs
// no validation; call Validate before running the pipeline.
func Load(fsys fs.FS) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := loadFile(fsys, constants.WorkersFile, &snap.Workers); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, constants.BankAccountsFile, &snap.BankAccounts); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, constants.AddressesFile, &snap.Addresses); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, constants.ComplianceDocsFile, &snap.ComplianceDocs); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, constants.InvoicesFile, &snap.Invoices); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, constants.LedgerFile, &snap.Ledger); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, constants.SupplierLinksFile, &snap.SupplierLinks); err != nil {
		return nil, err
	}
	if err := loadFile(fsys, constants.StatusDictionaryFile, &snap.StatusDictionary); err != nil {
		return nil, err
	}

	return snap, nil
}

// loadFile unmarshals one relation file into out.
func loadFile[T any](fsys fs.FS, name string, out *[]T) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil // File doesn't exist is okay
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapParse("yaml", name, err)
	}
	return nil
}
