package actions

import (
	"context"

	"github.com/carson-networks/ledger/internal/service"
	"github.com/shopspring/decimal"
)

// Deposit, Withdraw and Transfer report soft failures through Succeeded,
// never through the returned error.
type Deposit struct {
	Number string
	Amount decimal.Decimal

	Succeeded bool
}

func (d *Deposit) Perform(ctx context.Context, ledger *service.LedgerService) error {
	d.Succeeded = ledger.Deposit(ctx, d.Number, d.Amount)
	return nil
}

type Withdraw struct {
	Number string
	Amount decimal.Decimal

	Succeeded bool
}

func (w *Withdraw) Perform(ctx context.Context, ledger *service.LedgerService) error {
	w.Succeeded = ledger.Withdraw(ctx, w.Number, w.Amount)
	return nil
}

type Transfer struct {
	From   string
	To     string
	Amount decimal.Decimal

	Succeeded bool
}

func (t *Transfer) Perform(ctx context.Context, ledger *service.LedgerService) error {
	t.Succeeded = ledger.Transfer(ctx, t.From, t.To, t.Amount)
	return nil
}
