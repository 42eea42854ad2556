package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType tags the account variant.
type AccountType int8

const (
	AccountTypeRegular AccountType = iota
	AccountTypeSavings
	AccountTypeChecking
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeRegular:
		return "Regular"
	case AccountTypeSavings:
		return "Savings"
	case AccountTypeChecking:
		return "Checking"
	default:
		return fmt.Sprintf("AccountType(%d)", int8(t))
	}
}

// ParseAccountType matches "savings" and "checking" case-insensitively.
// Anything else is a regular account.
func ParseAccountType(s string) AccountType {
	switch strings.ToLower(s) {
	case "savings":
		return AccountTypeSavings
	case "checking":
		return AccountTypeChecking
	default:
		return AccountTypeRegular
	}
}

var (
	// SavingsInterestRate is the percent applied by AddInterest on new savings accounts.
	SavingsInterestRate = decimal.RequireFromString("3.5")

	// CheckingOverdraftLimit is how far below zero a new checking account may go.
	CheckingOverdraftLimit = decimal.NewFromInt(500)

	hundred = decimal.NewFromInt(100)
)

// Account is one ledger account. Only the variant's own field is meaningful:
// interestRate for savings, overdraftLimit for checking.
type Account struct {
	number         string
	holderName     string
	accountType    AccountType
	balance        decimal.Decimal
	interestRate   decimal.Decimal
	overdraftLimit decimal.Decimal
}

func NewRegularAccount(number, holderName string) *Account {
	return &Account{
		number:      number,
		holderName:  holderName,
		accountType: AccountTypeRegular,
		balance:     decimal.Zero,
	}
}

func NewSavingsAccount(number, holderName string, interestRate decimal.Decimal) *Account {
	return &Account{
		number:       number,
		holderName:   holderName,
		accountType:  AccountTypeSavings,
		balance:      decimal.Zero,
		interestRate: interestRate,
	}
}

func NewCheckingAccount(number, holderName string, overdraftLimit decimal.Decimal) *Account {
	return &Account{
		number:         number,
		holderName:     holderName,
		accountType:    AccountTypeChecking,
		balance:        decimal.Zero,
		overdraftLimit: overdraftLimit,
	}
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) HolderName() string {
	return a.holderName
}

func (a *Account) Type() AccountType {
	return a.accountType
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// InterestRate is zero for anything but a savings account.
func (a *Account) InterestRate() decimal.Decimal {
	return a.interestRate
}

// OverdraftLimit is zero for anything but a checking account.
func (a *Account) OverdraftLimit() decimal.Decimal {
	return a.overdraftLimit
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.credit(amount)
	return nil
}

// Withdraw returns false without touching the balance when the variant's
// policy rejects the amount. Non-positive amounts are an error.
func (a *Account) Withdraw(amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if !a.canWithdraw(amount) {
		return false, nil
	}
	a.balance = a.balance.Sub(amount)
	return true, nil
}

func (a *Account) canWithdraw(amount decimal.Decimal) bool {
	switch a.accountType {
	case AccountTypeChecking:
		return amount.LessThanOrEqual(a.balance.Add(a.overdraftLimit))
	default:
		return amount.LessThanOrEqual(a.balance)
	}
}

// AddInterest credits balance * interestRate / 100 and returns the amount
// credited. A zero balance earns nothing and leaves the account untouched.
func (a *Account) AddInterest() (decimal.Decimal, error) {
	if a.accountType != AccountTypeSavings {
		return decimal.Zero, ErrNotSavingsAccount
	}

	interest := a.balance.Mul(a.interestRate).Div(hundred)
	if !interest.IsPositive() {
		return decimal.Zero, nil
	}

	if err := a.Deposit(interest); err != nil {
		return decimal.Zero, err
	}
	return interest, nil
}

func (a *Account) credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) clone() *Account {
	c := *a
	return &c
}

// floor is the lowest balance the variant may hold.
func (a *Account) floor() decimal.Decimal {
	if a.accountType == AccountTypeChecking {
		return a.overdraftLimit.Neg()
	}
	return decimal.Zero
}
