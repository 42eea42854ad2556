package commands

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger/internal/operator"
	"github.com/carson-networks/ledger/internal/service"
	"github.com/carson-networks/ledger/internal/storage"
)

type testCLI struct {
	commands *Commands
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	store    *storage.Storage
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	color.NoColor = true

	dir := t.TempDir()
	return newTestCLIWithStorage(t, storage.NewFileStorage(filepath.Join(dir, "accounts.json"), filepath.Join(dir, "transactions.json")))
}

func newTestCLIWithStorage(t *testing.T, store *storage.Storage) *testCLI {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ledger := service.NewLedgerService(context.Background(), store, logger)
	delegator := operator.NewOperatorDelegator(ledger, logger)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	tc := &testCLI{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, store: store}
	tc.commands = &Commands{Logger: logger, Operator: delegator, Out: tc.out, ErrOut: tc.errOut, Backend: "file"}
	return tc
}

func (tc *testCLI) run(args ...string) error {
	tc.out.Reset()
	tc.errOut.Reset()
	return tc.commands.Run(context.Background(), append([]string{"ledger"}, args...))
}

func (tc *testCLI) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	require.NoError(t, tc.run(args...), tc.errOut.String())
	return tc.out.String()
}

func TestCreate(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.mustRun(t, "create", "--number", "S1", "--holder", "Grace Hopper", "--type", "savings")
	assert.Contains(t, out, "Created Savings account S1 for Grace Hopper")

	out = tc.mustRun(t, "create", "-n", "R1", "--holder", "Ada")
	assert.Contains(t, out, "Created Regular account R1 for Ada")
}

func TestCreate_Failures(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "create", "--number", "A1", "--holder", "Ada")

	err := tc.run("create", "--number", "A1", "--holder", "Eve")
	assert.ErrorIs(t, err, service.ErrDuplicateAccount)
	assert.Contains(t, tc.errOut.String(), "Error: account number already exists")

	err = tc.run("create", "--number", " ", "--holder", "Eve")
	assert.ErrorIs(t, err, service.ErrInvalidAccountNumber)

	assert.Error(t, tc.run("create", "--number", "B1"))
}

func TestDepositWithdraw(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "create", "--number", "C1", "--holder", "Linus", "--type", "checking")

	out := tc.mustRun(t, "withdraw", "C1", "300")
	assert.Contains(t, out, "Withdrew 300.00 from C1")
	assert.Contains(t, out, "Balance: -300.00")

	err := tc.run("withdraw", "C1", "250")
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, tc.errOut.String(), "withdrawal of 250.00 from C1: rejected")

	out = tc.mustRun(t, "deposit", "C1", "50.5")
	assert.Contains(t, out, "Deposited 50.50 to C1")
	assert.Contains(t, out, "Balance: -249.50")
}

func TestMoneyCommands_BadInput(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "create", "--number", "A1", "--holder", "Ada")

	assert.ErrorContains(t, tc.run("deposit", "A1", "ten"), `invalid amount "ten"`)
	assert.ErrorContains(t, tc.run("deposit", "A1"), "deposit expects NUMBER AMOUNT")
	assert.ErrorIs(t, tc.run("deposit", "A1", "0"), ErrRejected)
	assert.ErrorIs(t, tc.run("deposit", "A1", "-5"), ErrRejected)
	assert.ErrorIs(t, tc.run("deposit", "missing", "5"), ErrRejected)
	assert.ErrorContains(t, tc.run("transfer", "A1", "5"), "transfer expects FROM TO AMOUNT")
}

func TestTransfer(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "create", "--number", "X", "--holder", "Xena")
	tc.mustRun(t, "create", "--number", "Y", "--holder", "Yuri")
	tc.mustRun(t, "deposit", "X", "100")

	out := tc.mustRun(t, "transfer", "X", "Y", "40")
	assert.Contains(t, out, "Transferred 40.00 from X to Y")

	assert.ErrorIs(t, tc.run("transfer", "X", "Y", "60.01"), ErrRejected)

	out = tc.mustRun(t, "accounts")
	assert.Contains(t, out, "60.00")
	assert.Contains(t, out, "40.00")
	assert.Contains(t, out, "Xena")
	assert.Contains(t, out, "Yuri")
}

func TestBalanceAndHistory(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "create", "--number", "S1", "--holder", "Grace", "--type", "savings")

	out := tc.mustRun(t, "history", "S1")
	assert.Contains(t, out, "No transactions for S1")

	tc.mustRun(t, "deposit", "S1", "1000")
	out = tc.mustRun(t, "interest", "S1")
	assert.Contains(t, out, "Credited interest to S1")
	assert.Contains(t, out, "Balance: 1035.00")

	out = tc.mustRun(t, "balance", "S1")
	assert.Contains(t, out, "Savings")
	assert.Contains(t, out, "1035.00")
	assert.Contains(t, out, "3.5")

	out = tc.mustRun(t, "history", "S1")
	assert.Contains(t, out, "TXN00001")
	assert.Contains(t, out, "TXN00002")
	assert.Contains(t, out, "Interest credit at 3.5%")

	assert.ErrorIs(t, tc.run("balance", "nope"), service.ErrAccountNotFound)
}

func TestInterest(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "create", "--number", "S1", "--holder", "Grace", "--type", "savings")
	tc.mustRun(t, "create", "--number", "S2", "--holder", "Hedy", "--type", "savings")
	tc.mustRun(t, "create", "--number", "R1", "--holder", "Ada")
	tc.mustRun(t, "deposit", "S1", "200")

	assert.ErrorIs(t, tc.run("interest", "R1"), ErrRejected)
	assert.ErrorIs(t, tc.run("interest", "S2"), ErrRejected)
	assert.Error(t, tc.run("interest"))

	out := tc.mustRun(t, "interest", "--all")
	assert.Contains(t, out, "Credited interest to 1 account(s)")
}

func TestAccountsAndRename(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.mustRun(t, "accounts")
	assert.Contains(t, out, "No accounts")

	tc.mustRun(t, "create", "--number", "A1", "--holder", "Ada")
	out = tc.mustRun(t, "rename", "A1", "Ada Lovelace")
	assert.Contains(t, out, "Account A1 is now held by Ada Lovelace")

	assert.ErrorIs(t, tc.run("rename", "nope", "x"), service.ErrAccountNotFound)

	out = tc.mustRun(t, "accounts")
	assert.Contains(t, out, "Ada Lovelace")
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	first := newTestCLI(t)
	first.mustRun(t, "create", "--number", "A1", "--holder", "Ada")
	first.mustRun(t, "deposit", "A1", "10")

	second := newTestCLIWithStorage(t, first.store)
	out := second.mustRun(t, "deposit", "A1", "5")
	assert.Contains(t, out, "Balance: 15.00")

	out = second.mustRun(t, "history", "A1")
	assert.Contains(t, out, "TXN00002")
}

func TestStatus(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "create", "--number", "A1", "--holder", "Ada")
	tc.mustRun(t, "deposit", "A1", "10")

	out := tc.mustRun(t, "status")

	assert.Contains(t, out, "Storage: file")
	assert.Contains(t, out, "Accounts: 1")
	assert.Contains(t, out, "Transactions: 1")
	assert.Contains(t, out, "Next transaction: TXN00002")
}
