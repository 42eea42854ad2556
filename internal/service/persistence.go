package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/internal/storage/records"
)

func (s *LedgerService) load(ctx context.Context) {
	accounts, err := s.storage.Accounts.Load(ctx)
	if err == nil {
		var converted map[string]*Account
		converted, err = accountsFromRecords(accounts)
		if err == nil {
			s.accounts = converted
		}
	}
	s.logLoad("accounts", err)

	log, err := s.storage.Transactions.Load(ctx)
	if err == nil {
		var (
			transactions []Transaction
			next         int
		)
		transactions, next, err = transactionsFromLog(log)
		if err == nil {
			s.transactions = transactions
			s.nextTransaction = next
		}
	}
	s.logLoad("transactions", err)

	s.logger.WithFields(logrus.Fields{
		"accounts":        len(s.accounts),
		"transactions":    len(s.transactions),
		"nextTransaction": s.nextTransaction,
	}).Info("LedgerService.load.complete")

	if s.logger.IsLevelEnabled(logrus.DebugLevel) {
		s.logger.Debugf("LedgerService.load.state %s", spew.Sdump(s.accounts))
	}
}

func (s *LedgerService) logLoad(artifact string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, records.ErrNotFound):
		s.logger.WithField("artifact", artifact).Info("LedgerService.load.starting fresh")
	default:
		s.logger.WithError(err).WithField("artifact", artifact).Warn("LedgerService.load.unreadable, starting fresh")
	}
}

// save writes both artifacts. Failures are logged and swallowed: the
// in-memory mutation that triggered the save stands.
func (s *LedgerService) save(ctx context.Context) {
	if err := s.storage.Accounts.Save(ctx, accountsToRecords(s.accounts)); err != nil {
		s.logger.WithError(err).Warn("LedgerService.save.accounts")
	}

	log := &records.TransactionLog{
		Transactions: transactionsToRecords(s.transactions),
		Counter:      s.nextTransaction,
	}
	if err := s.storage.Transactions.Save(ctx, log); err != nil {
		s.logger.WithError(err).Warn("LedgerService.save.transactions")
	}
}

func accountTypeToStorage(t AccountType) records.AccountType {
	return records.AccountType(t)
}

func accountTypeFromStorage(t records.AccountType) AccountType {
	return AccountType(t)
}

func accountsToRecords(accounts map[string]*Account) map[string]*records.Account {
	rows := make(map[string]*records.Account, len(accounts))
	for number, account := range accounts {
		row := &records.Account{
			AccountNumber: account.number,
			HolderName:    account.holderName,
			AccountType:   accountTypeToStorage(account.accountType),
			Balance:       account.balance,
		}
		switch account.accountType {
		case AccountTypeSavings:
			rate := account.interestRate
			row.InterestRate = &rate
		case AccountTypeChecking:
			limit := account.overdraftLimit
			row.OverdraftLimit = &limit
		}
		rows[number] = row
	}
	return rows
}

// accountsFromRecords rejects the whole artifact if any record is
// inconsistent, so a damaged file never yields a partial ledger.
func accountsFromRecords(rows map[string]*records.Account) (map[string]*Account, error) {
	accounts := make(map[string]*Account, len(rows))
	for number, row := range rows {
		if row == nil || row.AccountNumber != number || strings.TrimSpace(number) == "" {
			return nil, fmt.Errorf("account record %q: number mismatch", number)
		}
		if !row.AccountType.Valid() {
			return nil, fmt.Errorf("account record %q: invalid type %d", number, int8(row.AccountType))
		}

		account := &Account{
			number:      row.AccountNumber,
			holderName:  row.HolderName,
			accountType: accountTypeFromStorage(row.AccountType),
			balance:     row.Balance,
		}
		switch account.accountType {
		case AccountTypeSavings:
			if row.InterestRate == nil {
				return nil, fmt.Errorf("account record %q: savings account without interest rate", number)
			}
			account.interestRate = *row.InterestRate
		case AccountTypeChecking:
			if row.OverdraftLimit == nil || row.OverdraftLimit.IsNegative() {
				return nil, fmt.Errorf("account record %q: checking account without overdraft limit", number)
			}
			account.overdraftLimit = *row.OverdraftLimit
		}

		if account.balance.LessThan(account.floor()) {
			return nil, fmt.Errorf("account record %q: balance %s below %s", number, account.balance, account.floor())
		}

		accounts[number] = account
	}
	return accounts, nil
}

func transactionsToRecords(transactions []Transaction) []*records.Transaction {
	rows := make([]*records.Transaction, len(transactions))
	for i, transaction := range transactions {
		rows[i] = &records.Transaction{
			TransactionID: transaction.ID,
			AccountNumber: transaction.AccountNumber,
			Type:          string(transaction.Type),
			Amount:        transaction.Amount,
			Timestamp:     transaction.Timestamp,
			BalanceAfter:  transaction.BalanceAfter,
			Description:   transaction.Description,
		}
	}
	return rows
}

// transactionsFromLog also returns the next sequence to hand out. A stored
// counter that lags behind the highest recorded ID is moved past it so IDs
// are never reused.
func transactionsFromLog(log *records.TransactionLog) ([]Transaction, int, error) {
	if log == nil {
		return nil, 0, errors.New("transaction log is empty")
	}

	next := log.Counter
	if next < 1 {
		next = 1
	}

	transactions := make([]Transaction, 0, len(log.Transactions))
	last := 0
	for i, row := range log.Transactions {
		if row == nil {
			return nil, 0, fmt.Errorf("transaction record %d: empty", i)
		}
		sequence, ok := parseTransactionID(row.TransactionID)
		if !ok {
			return nil, 0, fmt.Errorf("transaction record %d: malformed id %q", i, row.TransactionID)
		}
		if sequence <= last {
			return nil, 0, fmt.Errorf("transaction record %d: id %q out of order", i, row.TransactionID)
		}
		last = sequence

		transactionType := TransactionType(row.Type)
		if !transactionType.Valid() {
			return nil, 0, fmt.Errorf("transaction record %s: unknown type %q", row.TransactionID, row.Type)
		}
		if !row.Amount.IsPositive() {
			return nil, 0, fmt.Errorf("transaction record %s: non-positive amount %s", row.TransactionID, row.Amount)
		}

		transactions = append(transactions, Transaction{
			ID:            row.TransactionID,
			AccountNumber: row.AccountNumber,
			Type:          transactionType,
			Amount:        row.Amount,
			Timestamp:     row.Timestamp,
			BalanceAfter:  row.BalanceAfter,
			Description:   row.Description,
		})
	}

	if next <= last {
		next = last + 1
	}

	return transactions, next, nil
}
