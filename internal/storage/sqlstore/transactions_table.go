package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carson-networks/ledger/internal/storage/records"
)

const (
	selectTransactionsQuery = `SELECT transaction_id, account_number, type, amount, created_at, balance_after, description FROM ledger_transactions ORDER BY seq`
	selectCounterQuery      = `SELECT next_value FROM ledger_counter WHERE id = 1`
	selectStoredCountQuery  = `SELECT COALESCE(MAX(seq), 0) FROM ledger_transactions`
	insertTransactionQuery  = `INSERT INTO ledger_transactions (seq, transaction_id, account_number, type, amount, created_at, balance_after, description) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (seq) DO NOTHING`
	upsertCounterQuery      = `INSERT INTO ledger_counter (id, next_value) VALUES (1, $1) ON CONFLICT (id) DO UPDATE SET next_value = EXCLUDED.next_value`
)

// TransactionsTable keeps the transaction log in ledger_transactions and the
// next-ID seed in the single row of ledger_counter.
type TransactionsTable struct {
	db *sql.DB
}

// Ensure TransactionsTable implements ITransactionStore at compile time.
var _ records.ITransactionStore = (*TransactionsTable)(nil)

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: db}
}

// Load returns records.ErrNotFound when the counter row has never been written.
func (t *TransactionsTable) Load(ctx context.Context) (*records.TransactionLog, error) {
	var counter int
	err := t.db.QueryRowContext(ctx, selectCounterQuery).Scan(&counter)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ledger_counter: %w", records.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select counter: %w", err)
	}

	rows, err := t.db.QueryContext(ctx, selectTransactionsQuery)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*records.Transaction{}
	for rows.Next() {
		var transaction records.Transaction
		err := rows.Scan(
			&transaction.TransactionID,
			&transaction.AccountNumber,
			&transaction.Type,
			&transaction.Amount,
			&transaction.Timestamp,
			&transaction.BalanceAfter,
			&transaction.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, &transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return &records.TransactionLog{
		Transactions: transactions,
		Counter:      counter,
	}, nil
}

// Save appends the records past the highest stored seq. Rows already in the
// table are never rewritten.
func (t *TransactionsTable) Save(ctx context.Context, log *records.TransactionLog) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var stored int64
	if err = tx.QueryRowContext(ctx, selectStoredCountQuery).Scan(&stored); err != nil {
		return fmt.Errorf("select stored count: %w", err)
	}

	for i := stored; i < int64(len(log.Transactions)); i++ {
		transaction := log.Transactions[i]
		_, err = tx.ExecContext(ctx, insertTransactionQuery,
			i+1,
			transaction.TransactionID,
			transaction.AccountNumber,
			transaction.Type,
			transaction.Amount,
			transaction.Timestamp,
			transaction.BalanceAfter,
			transaction.Description,
		)
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", transaction.TransactionID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, upsertCounterQuery, int64(log.Counter)); err != nil {
		return fmt.Errorf("upsert counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
