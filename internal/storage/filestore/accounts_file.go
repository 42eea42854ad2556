package filestore

import (
	"context"
	"fmt"

	"github.com/carson-networks/ledger/internal/storage/records"
)

type accountsEnvelope struct {
	Version  int                         `json:"version"`
	Accounts map[string]*records.Account `json:"accounts"`
}

// AccountsFile stores the account mapping as a single JSON document.
type AccountsFile struct {
	path string
}

// Ensure AccountsFile implements IAccountStore at compile time.
var _ records.IAccountStore = (*AccountsFile)(nil)

func NewAccountsFile(path string) *AccountsFile {
	return &AccountsFile{path: path}
}

func (f *AccountsFile) Path() string {
	return f.path
}

// Load returns records.ErrNotFound when the file has never been written.
func (f *AccountsFile) Load(ctx context.Context) (map[string]*records.Account, error) {
	var envelope accountsEnvelope
	if err := readArtifact(ctx, f.path, &envelope); err != nil {
		return nil, err
	}
	if err := checkVersion(f.path, envelope.Version); err != nil {
		return nil, err
	}

	accounts := make(map[string]*records.Account, len(envelope.Accounts))
	for number, account := range envelope.Accounts {
		if account == nil {
			return nil, fmt.Errorf("%s: empty record for account %q", f.path, number)
		}
		accounts[number] = account
	}

	return accounts, nil
}

func (f *AccountsFile) Save(ctx context.Context, accounts map[string]*records.Account) error {
	envelope := accountsEnvelope{
		Version:  artifactVersion,
		Accounts: accounts,
	}
	if envelope.Accounts == nil {
		envelope.Accounts = map[string]*records.Account{}
	}

	return writeArtifact(ctx, f.path, &envelope)
}
