package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "WITHDRAWAL"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransferOut, TransactionTypeTransferIn:
		return true
	default:
		return false
	}
}

// Transaction records one balance-affecting event. It is handed out by
// value and never changed once appended to the log.
type Transaction struct {
	ID            string
	AccountNumber string
	Type          TransactionType
	Amount        decimal.Decimal
	Timestamp     time.Time
	BalanceAfter  decimal.Decimal
	Description   string
}

const transactionIDPrefix = "TXN"

func formatTransactionID(sequence int) string {
	return fmt.Sprintf("%s%05d", transactionIDPrefix, sequence)
}

// parseTransactionID accepts only the canonical form formatTransactionID
// produces, so "TXN1" and "TXN+0001" are rejected.
func parseTransactionID(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, transactionIDPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	sequence, err := strconv.Atoi(digits)
	if err != nil || sequence < 1 || formatTransactionID(sequence) != id {
		return 0, false
	}
	return sequence, true
}
