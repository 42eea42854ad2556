package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger/internal/storage/records"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

// -- AccountsTable tests --

func TestAccountsTable_Load(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"account_number", "holder_name", "account_type", "balance", "interest_rate", "overdraft_limit"}).
		AddRow("C1", "Linus", int64(2), "-300", nil, "500").
		AddRow("R1", "Ada", int64(0), "120.50", nil, nil).
		AddRow("S1", "Grace", int64(1), "1035", "3.5", nil)
	mock.ExpectQuery(q(selectAccountsQuery)).WillReturnRows(rows)

	accounts, err := NewAccountsTable(db).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, records.AccountTypeChecking, accounts["C1"].AccountType)
	assert.True(t, accounts["C1"].Balance.Equal(decimal.RequireFromString("-300")))
	assert.True(t, accounts["C1"].OverdraftLimit.Equal(decimal.RequireFromString("500")))
	assert.Nil(t, accounts["C1"].InterestRate)
	assert.Equal(t, "Ada", accounts["R1"].HolderName)
	assert.Nil(t, accounts["R1"].InterestRate)
	assert.Nil(t, accounts["R1"].OverdraftLimit)
	assert.True(t, accounts["S1"].InterestRate.Equal(decimal.RequireFromString("3.5")))
}

func TestAccountsTable_LoadInvalidType(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"account_number", "holder_name", "account_type", "balance", "interest_rate", "overdraft_limit"}).
		AddRow("X1", "Ada", int64(9), "1", nil, nil)
	mock.ExpectQuery(q(selectAccountsQuery)).WillReturnRows(rows)

	accounts, err := NewAccountsTable(db).Load(context.Background())

	assert.Error(t, err)
	assert.Nil(t, accounts)
}

func TestAccountsTable_LoadQueryError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(q(selectAccountsQuery)).WillReturnError(errors.New("connection refused"))

	accounts, err := NewAccountsTable(db).Load(context.Background())

	assert.ErrorContains(t, err, "connection refused")
	assert.Nil(t, accounts)
}

func TestAccountsTable_Save(t *testing.T) {
	db, mock := newMockDB(t)
	rate := decimal.RequireFromString("3.5")

	mock.ExpectBegin()
	mock.ExpectExec(q(deleteAccountsQuery)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(q(insertAccountQuery)).
		WithArgs("R1", "Ada", int16(0), decimal.RequireFromString("10"), decimal.NullDecimal{}, decimal.NullDecimal{}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(insertAccountQuery)).
		WithArgs("S1", "Grace", int16(1), decimal.RequireFromString("1000"), decimal.NewNullDecimal(rate), decimal.NullDecimal{}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewAccountsTable(db).Save(context.Background(), map[string]*records.Account{
		"S1": {AccountNumber: "S1", HolderName: "Grace", AccountType: records.AccountTypeSavings, Balance: decimal.RequireFromString("1000"), InterestRate: &rate},
		"R1": {AccountNumber: "R1", HolderName: "Ada", AccountType: records.AccountTypeRegular, Balance: decimal.RequireFromString("10")},
	})

	assert.NoError(t, err)
}

func TestAccountsTable_SaveRollsBackOnInsertError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(q(deleteAccountsQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q(insertAccountQuery)).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := NewAccountsTable(db).Save(context.Background(), map[string]*records.Account{
		"R1": {AccountNumber: "R1", HolderName: "Ada", AccountType: records.AccountTypeRegular, Balance: decimal.Zero},
	})

	assert.ErrorContains(t, err, "disk full")
}

// -- TransactionsTable tests --

func TestTransactionsTable_Load(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q(selectCounterQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"next_value"}).AddRow(int64(3)))
	mock.ExpectQuery(q(selectTransactionsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id", "account_number", "type", "amount", "created_at", "balance_after", "description"}).
			AddRow("TXN00001", "A1", "DEPOSIT", "100", created, "100", "Deposit to account").
			AddRow("TXN00002", "A1", "WITHDRAWAL", "25.5", created.Add(time.Minute), "74.5", "Withdrawal from account"))

	log, err := NewTransactionsTable(db).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, log.Counter)
	require.Len(t, log.Transactions, 2)
	assert.Equal(t, "TXN00001", log.Transactions[0].TransactionID)
	assert.Equal(t, "WITHDRAWAL", log.Transactions[1].Type)
	assert.True(t, log.Transactions[1].BalanceAfter.Equal(decimal.RequireFromString("74.5")))
	assert.True(t, log.Transactions[1].Timestamp.Equal(created.Add(time.Minute)))
}

func TestTransactionsTable_LoadNeverSaved(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(q(selectCounterQuery)).WillReturnRows(sqlmock.NewRows([]string{"next_value"}))

	log, err := NewTransactionsTable(db).Load(context.Background())

	assert.ErrorIs(t, err, records.ErrNotFound)
	assert.Nil(t, log)
}

func TestTransactionsTable_Save(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectStoredCountQuery)).WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(0)))
	mock.ExpectExec(q(insertTransactionQuery)).
		WithArgs(int64(1), "TXN00001", "A1", "TRANSFER_OUT", decimal.RequireFromString("40"), created, decimal.RequireFromString("60"), "Transfer to B1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(insertTransactionQuery)).
		WithArgs(int64(2), "TXN00002", "B1", "TRANSFER_IN", decimal.RequireFromString("40"), created, decimal.RequireFromString("40"), "Transfer from A1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(upsertCounterQuery)).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTransactionsTable(db).Save(context.Background(), &records.TransactionLog{
		Transactions: []*records.Transaction{
			{TransactionID: "TXN00001", AccountNumber: "A1", Type: "TRANSFER_OUT", Amount: decimal.RequireFromString("40"), Timestamp: created, BalanceAfter: decimal.RequireFromString("60"), Description: "Transfer to B1"},
			{TransactionID: "TXN00002", AccountNumber: "B1", Type: "TRANSFER_IN", Amount: decimal.RequireFromString("40"), Timestamp: created, BalanceAfter: decimal.RequireFromString("40"), Description: "Transfer from A1"},
		},
		Counter: 3,
	})

	assert.NoError(t, err)
}

func TestTransactionsTable_SaveCommitError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectStoredCountQuery)).WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(0)))
	mock.ExpectExec(q(upsertCounterQuery)).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := NewTransactionsTable(db).Save(context.Background(), &records.TransactionLog{Counter: 1})

	assert.ErrorContains(t, err, "serialization failure")
}

func TestTransactionsTable_SaveAppendsOnlyNewRecords(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	log := &records.TransactionLog{
		Transactions: []*records.Transaction{
			{TransactionID: "TXN00001", AccountNumber: "A1", Type: "DEPOSIT", Amount: decimal.RequireFromString("10"), Timestamp: created, BalanceAfter: decimal.RequireFromString("10"), Description: "Deposit to account"},
			{TransactionID: "TXN00002", AccountNumber: "A1", Type: "DEPOSIT", Amount: decimal.RequireFromString("5"), Timestamp: created, BalanceAfter: decimal.RequireFromString("15"), Description: "Deposit to account"},
			{TransactionID: "TXN00003", AccountNumber: "A1", Type: "WITHDRAWAL", Amount: decimal.RequireFromString("1"), Timestamp: created, BalanceAfter: decimal.RequireFromString("14"), Description: "Withdrawal from account"},
		},
		Counter: 4,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectStoredCountQuery)).WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(2)))
	mock.ExpectExec(q(insertTransactionQuery)).
		WithArgs(int64(3), "TXN00003", "A1", "WITHDRAWAL", decimal.RequireFromString("1"), created, decimal.RequireFromString("14"), "Withdrawal from account").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(upsertCounterQuery)).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, NewTransactionsTable(db).Save(context.Background(), log))
}

func TestTransactionsTable_SaveNothingNew(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectStoredCountQuery)).WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(5)))
	mock.ExpectExec(q(upsertCounterQuery)).WithArgs(int64(6)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTransactionsTable(db).Save(context.Background(), &records.TransactionLog{
		Transactions: []*records.Transaction{{TransactionID: "TXN00001"}},
		Counter:      6,
	})

	assert.NoError(t, err)
}
