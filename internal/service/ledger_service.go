package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/internal/storage"
)

// LedgerService owns every account and the append-only transaction log.
// It holds no locks: callers must drive it from a single goroutine (see the
// operator package).
type LedgerService struct {
	storage *storage.Storage
	logger  *logrus.Logger
	now     func() time.Time

	accounts        map[string]*Account
	transactions    []Transaction
	nextTransaction int
}

// NewLedgerService loads both artifacts from store. A missing or unreadable
// artifact leaves that part of the ledger empty instead of failing.
func NewLedgerService(ctx context.Context, store *storage.Storage, logger *logrus.Logger) *LedgerService {
	s := &LedgerService{
		storage:         store,
		logger:          logger,
		now:             time.Now,
		accounts:        make(map[string]*Account),
		transactions:    []Transaction{},
		nextTransaction: 1,
	}
	s.load(ctx)
	return s
}

// CreateAccount opens an account with a zero balance. Savings accounts get
// SavingsInterestRate and checking accounts get CheckingOverdraftLimit.
func (s *LedgerService) CreateAccount(ctx context.Context, number, holderName, accountType string) (*Account, error) {
	// Both artifacts are UTF-8 text; anything else would not survive a reload.
	if strings.TrimSpace(number) == "" || !utf8.ValidString(number) {
		return nil, ErrInvalidAccountNumber
	}
	if !utf8.ValidString(holderName) {
		return nil, ErrInvalidHolderName
	}
	if _, ok := s.accounts[number]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, number)
	}

	var account *Account
	switch ParseAccountType(accountType) {
	case AccountTypeSavings:
		account = NewSavingsAccount(number, holderName, SavingsInterestRate)
	case AccountTypeChecking:
		account = NewCheckingAccount(number, holderName, CheckingOverdraftLimit)
	default:
		account = NewRegularAccount(number, holderName)
	}

	s.accounts[number] = account
	s.save(ctx)

	s.logger.WithFields(logrus.Fields{
		"accountNumber": number,
		"accountType":   account.Type().String(),
	}).Info("LedgerService.CreateAccount.created")

	return account.clone(), nil
}

// Deposit reports false for an unknown account or a non-positive amount.
func (s *LedgerService) Deposit(ctx context.Context, number string, amount decimal.Decimal) bool {
	account, ok := s.lookup("Deposit", number)
	if !ok {
		return false
	}

	if err := account.Deposit(amount); err != nil {
		s.rejected("Deposit", number, amount, err)
		return false
	}

	s.record(number, TransactionTypeDeposit, amount, account.Balance(), "Deposit to account")
	s.save(ctx)
	return true
}

// Withdraw reports false for an unknown account, a non-positive amount, or
// an amount the account's withdrawal policy refuses.
func (s *LedgerService) Withdraw(ctx context.Context, number string, amount decimal.Decimal) bool {
	account, ok := s.lookup("Withdraw", number)
	if !ok {
		return false
	}

	withdrawn, err := account.Withdraw(amount)
	if err != nil {
		s.rejected("Withdraw", number, amount, err)
		return false
	}
	if !withdrawn {
		s.insufficient("Withdraw", number, amount)
		return false
	}

	s.record(number, TransactionTypeWithdrawal, amount, account.Balance(), "Withdrawal from account")
	s.save(ctx)
	return true
}

// Transfer moves amount from one account to another. The withdrawal check
// on the source gates the whole operation: either both balances change and
// both records are appended, or nothing changes.
func (s *LedgerService) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) bool {
	from, ok := s.lookup("Transfer", fromNumber)
	if !ok {
		return false
	}
	to, ok := s.lookup("Transfer", toNumber)
	if !ok {
		return false
	}

	withdrawn, err := from.Withdraw(amount)
	if err != nil {
		s.rejected("Transfer", fromNumber, amount, err)
		return false
	}
	if !withdrawn {
		s.insufficient("Transfer", fromNumber, amount)
		return false
	}
	to.credit(amount)

	s.record(fromNumber, TransactionTypeTransferOut, amount, from.Balance(), "Transfer to "+toNumber)
	s.record(toNumber, TransactionTypeTransferIn, amount, to.Balance(), "Transfer from "+fromNumber)
	s.save(ctx)
	return true
}

// ApplyInterest accrues interest on one savings account and records it as
// a deposit. It reports false for unknown or non-savings accounts and when
// there is nothing to credit.
func (s *LedgerService) ApplyInterest(ctx context.Context, number string) bool {
	account, ok := s.lookup("ApplyInterest", number)
	if !ok {
		return false
	}

	if !s.accrue(account) {
		return false
	}

	s.save(ctx)
	return true
}

// ApplyInterestAll accrues interest on every savings account, saves once and
// returns how many accounts were credited.
func (s *LedgerService) ApplyInterestAll(ctx context.Context) int {
	credited := 0
	for _, number := range s.sortedNumbers() {
		account := s.accounts[number]
		if account.Type() != AccountTypeSavings {
			continue
		}
		if s.accrue(account) {
			credited++
		}
	}

	if credited > 0 {
		s.save(ctx)
	}
	return credited
}

// UpdateHolderName renames the account holder. No transaction is recorded.
func (s *LedgerService) UpdateHolderName(ctx context.Context, number, holderName string) error {
	account, ok := s.accounts[number]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	if !utf8.ValidString(holderName) {
		return ErrInvalidHolderName
	}

	account.holderName = holderName
	s.save(ctx)
	return nil
}

// GetAccount returns a copy of the account.
func (s *LedgerService) GetAccount(number string) (*Account, error) {
	account, ok := s.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	return account.clone(), nil
}

// TransactionHistory returns the account's transactions in the order they
// were recorded. The result is a snapshot and is never nil.
func (s *LedgerService) TransactionHistory(number string) []Transaction {
	history := []Transaction{}
	for _, transaction := range s.transactions {
		if transaction.AccountNumber == number {
			history = append(history, transaction)
		}
	}
	return history
}

// AllAccounts returns copies of every account. Callers must not rely on the
// order; it is sorted by account number for stable output only.
func (s *LedgerService) AllAccounts() []*Account {
	accounts := make([]*Account, 0, len(s.accounts))
	for _, number := range s.sortedNumbers() {
		accounts = append(accounts, s.accounts[number].clone())
	}
	return accounts
}

type Stats struct {
	Accounts          int
	Transactions      int
	NextTransactionID string
}

func (s *LedgerService) Stats() Stats {
	return Stats{
		Accounts:          len(s.accounts),
		Transactions:      len(s.transactions),
		NextTransactionID: formatTransactionID(s.nextTransaction),
	}
}

func (s *LedgerService) accrue(account *Account) bool {
	interest, err := account.AddInterest()
	if err != nil {
		s.logger.WithError(err).WithField("accountNumber", account.Number()).
			Info("LedgerService.ApplyInterest.rejected")
		return false
	}
	if !interest.IsPositive() {
		return false
	}

	description := fmt.Sprintf("Interest credit at %s%%", account.InterestRate().String())
	s.record(account.Number(), TransactionTypeDeposit, interest, account.Balance(), description)
	return true
}

func (s *LedgerService) record(number string, transactionType TransactionType, amount, balanceAfter decimal.Decimal, description string) {
	transaction := Transaction{
		ID:            formatTransactionID(s.nextTransaction),
		AccountNumber: number,
		Type:          transactionType,
		Amount:        amount,
		Timestamp:     s.now(),
		BalanceAfter:  balanceAfter,
		Description:   description,
	}
	s.nextTransaction++
	s.transactions = append(s.transactions, transaction)
}

func (s *LedgerService) lookup(operation, number string) (*Account, bool) {
	account, ok := s.accounts[number]
	if !ok {
		s.logger.WithField("accountNumber", number).Infof("LedgerService.%s.account not found", operation)
	}
	return account, ok
}

func (s *LedgerService) rejected(operation, number string, amount decimal.Decimal, err error) {
	s.logger.WithError(err).WithFields(logrus.Fields{
		"accountNumber": number,
		"amount":        amount.String(),
	}).Warnf("LedgerService.%s.rejected", operation)
}

func (s *LedgerService) insufficient(operation, number string, amount decimal.Decimal) {
	s.logger.WithFields(logrus.Fields{
		"accountNumber": number,
		"amount":        amount.String(),
	}).Infof("LedgerService.%s.insufficient funds", operation)
}

func (s *LedgerService) sortedNumbers() []string {
	numbers := make([]string, 0, len(s.accounts))
	for number := range s.accounts {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers
}
