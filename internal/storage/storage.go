package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/ledger/internal/config"
	"github.com/carson-networks/ledger/internal/storage/filestore"
	"github.com/carson-networks/ledger/internal/storage/records"
	"github.com/carson-networks/ledger/internal/storage/sqlstore"
)

// Storage holds the two persisted artifacts of the ledger.
type Storage struct {
	DB           *sql.DB
	Accounts     records.IAccountStore
	Transactions records.ITransactionStore
}

func NewStorage(env *config.Config) (*Storage, error) {
	switch env.Storage {
	case config.StorageFile:
		return NewFileStorage(env.AccountsPath(), env.TransactionsPath()), nil
	case config.StoragePostgres:
		db, err := sql.Open("postgres", env.PostgresConnectionString())
		if err != nil {
			return nil, err
		}
		return NewSQLStorage(db), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", env.Storage)
	}
}

func NewFileStorage(accountsPath, transactionsPath string) *Storage {
	return &Storage{
		Accounts:     filestore.NewAccountsFile(accountsPath),
		Transactions: filestore.NewTransactionsFile(transactionsPath),
	}
}

func NewSQLStorage(db *sql.DB) *Storage {
	return &Storage{
		DB:           db,
		Accounts:     sqlstore.NewAccountsTable(db),
		Transactions: sqlstore.NewTransactionsTable(db),
	}
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
