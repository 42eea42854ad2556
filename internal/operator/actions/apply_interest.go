package actions

import (
	"context"

	"github.com/carson-networks/ledger/internal/service"
)

type ApplyInterest struct {
	Number string

	Credited bool
}

func (a *ApplyInterest) Perform(ctx context.Context, ledger *service.LedgerService) error {
	a.Credited = ledger.ApplyInterest(ctx, a.Number)
	return nil
}

// ApplyInterestAll credits every savings account with a positive balance.
type ApplyInterestAll struct {
	Credited int
}

func (a *ApplyInterestAll) Perform(ctx context.Context, ledger *service.LedgerService) error {
	a.Credited = ledger.ApplyInterestAll(ctx)
	return nil
}
