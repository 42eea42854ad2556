package filestore

import (
	"context"
	"fmt"

	"github.com/carson-networks/ledger/internal/storage/records"
)

// Counter follows the list and seeds the next transaction ID.
type transactionsEnvelope struct {
	Version      int                    `json:"version"`
	Transactions []*records.Transaction `json:"transactions"`
	Counter      int                    `json:"counter"`
}

// TransactionsFile stores the transaction log and counter as a single JSON document.
type TransactionsFile struct {
	path string
}

// Ensure TransactionsFile implements ITransactionStore at compile time.
var _ records.ITransactionStore = (*TransactionsFile)(nil)

func NewTransactionsFile(path string) *TransactionsFile {
	return &TransactionsFile{path: path}
}

func (f *TransactionsFile) Path() string {
	return f.path
}

// Load returns records.ErrNotFound when the file has never been written.
func (f *TransactionsFile) Load(ctx context.Context) (*records.TransactionLog, error) {
	var envelope transactionsEnvelope
	if err := readArtifact(ctx, f.path, &envelope); err != nil {
		return nil, err
	}
	if err := checkVersion(f.path, envelope.Version); err != nil {
		return nil, err
	}
	if envelope.Counter < 1 {
		return nil, fmt.Errorf("%s: invalid counter %d", f.path, envelope.Counter)
	}

	for i, transaction := range envelope.Transactions {
		if transaction == nil {
			return nil, fmt.Errorf("%s: empty transaction record at %d", f.path, i)
		}
	}

	transactions := envelope.Transactions
	if transactions == nil {
		transactions = []*records.Transaction{}
	}

	return &records.TransactionLog{
		Transactions: transactions,
		Counter:      envelope.Counter,
	}, nil
}

func (f *TransactionsFile) Save(ctx context.Context, log *records.TransactionLog) error {
	envelope := transactionsEnvelope{
		Version:      artifactVersion,
		Transactions: log.Transactions,
		Counter:      log.Counter,
	}
	if envelope.Transactions == nil {
		envelope.Transactions = []*records.Transaction{}
	}

	return writeArtifact(ctx, f.path, &envelope)
}
