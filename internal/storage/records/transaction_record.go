package records

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of one ledger event.
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	AccountNumber string          `json:"accountNumber"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Description   string          `json:"description"`
}

// TransactionLog is the transactions artifact: the ordered log followed by
// the counter that seeds the next transaction ID.
type TransactionLog struct {
	Transactions []*Transaction
	Counter      int
}

// ITransactionStore persists the transaction log as one artifact.
//
//go:generate mockery --name ITransactionStore --inpackage --with-expecter --filename mock_ITransactionStore.go
type ITransactionStore interface {
	Load(ctx context.Context) (*TransactionLog, error)
	Save(ctx context.Context, log *TransactionLog) error
}
