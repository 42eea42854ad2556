package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger/internal/storage/records"
)

const (
	selectAccountsQuery = `SELECT account_number, holder_name, account_type, balance, interest_rate, overdraft_limit FROM ledger_accounts ORDER BY account_number`
	deleteAccountsQuery = `DELETE FROM ledger_accounts`
	insertAccountQuery  = `INSERT INTO ledger_accounts (account_number, holder_name, account_type, balance, interest_rate, overdraft_limit) VALUES ($1, $2, $3, $4, $5, $6)`
)

// AccountsTable keeps the account mapping in ledger_accounts. Save replaces
// the table contents inside one SQL transaction.
type AccountsTable struct {
	db *sql.DB
}

// Ensure AccountsTable implements IAccountStore at compile time.
var _ records.IAccountStore = (*AccountsTable)(nil)

func NewAccountsTable(db *sql.DB) *AccountsTable {
	return &AccountsTable{db: db}
}

func (t *AccountsTable) Load(ctx context.Context) (map[string]*records.Account, error) {
	rows, err := t.db.QueryContext(ctx, selectAccountsQuery)
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]*records.Account)
	for rows.Next() {
		var (
			account        records.Account
			accountType    int16
			interestRate   decimal.NullDecimal
			overdraftLimit decimal.NullDecimal
		)
		err := rows.Scan(
			&account.AccountNumber,
			&account.HolderName,
			&accountType,
			&account.Balance,
			&interestRate,
			&overdraftLimit,
		)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		account.AccountType = records.AccountType(accountType)
		if !account.AccountType.Valid() {
			return nil, fmt.Errorf("account %q: invalid account type %d", account.AccountNumber, accountType)
		}
		if interestRate.Valid {
			account.InterestRate = &interestRate.Decimal
		}
		if overdraftLimit.Valid {
			account.OverdraftLimit = &overdraftLimit.Decimal
		}

		accounts[account.AccountNumber] = &account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, nil
}

func (t *AccountsTable) Save(ctx context.Context, accounts map[string]*records.Account) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAccountsQuery); err != nil {
		return fmt.Errorf("delete accounts: %w", err)
	}

	numbers := make([]string, 0, len(accounts))
	for number := range accounts {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)

	for _, number := range numbers {
		account := accounts[number]
		_, err = tx.ExecContext(ctx, insertAccountQuery,
			account.AccountNumber,
			account.HolderName,
			int16(account.AccountType),
			account.Balance,
			nullDecimal(account.InterestRate),
			nullDecimal(account.OverdraftLimit),
		)
		if err != nil {
			return fmt.Errorf("insert account %q: %w", number, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
