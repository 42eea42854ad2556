package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type AccountType int8

const (
	AccountTypeRegular AccountType = iota
	AccountTypeSavings
	AccountTypeChecking
)

var accountTypeNames = map[AccountType]string{
	AccountTypeRegular:  "Regular",
	AccountTypeSavings:  "Savings",
	AccountTypeChecking: "Checking",
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AccountType(%d)", int8(t))
}

func (t AccountType) Valid() bool {
	_, ok := accountTypeNames[t]
	return ok
}

// MarshalText writes the type by name so artifacts stay readable.
func (t AccountType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("records: invalid account type %d", int8(t))
	}
	return []byte(t.String()), nil
}

func (t *AccountType) UnmarshalText(text []byte) error {
	for accountType, name := range accountTypeNames {
		if strings.EqualFold(name, string(text)) {
			*t = accountType
			return nil
		}
	}
	return fmt.Errorf("records: unknown account type %q", string(text))
}

// Account is the persisted form of one ledger account. InterestRate is set
// only for savings accounts and OverdraftLimit only for checking accounts.
type Account struct {
	AccountNumber  string           `json:"accountNumber"`
	HolderName     string           `json:"holderName"`
	AccountType    AccountType      `json:"accountType"`
	Balance        decimal.Decimal  `json:"balance"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraftLimit,omitempty"`
}

// IAccountStore persists the whole account mapping as one artifact.
//
//go:generate mockery --name IAccountStore --inpackage --with-expecter --filename mock_IAccountStore.go
type IAccountStore interface {
	Load(ctx context.Context) (map[string]*Account, error)
	Save(ctx context.Context, accounts map[string]*Account) error
}
