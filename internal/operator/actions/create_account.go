package actions

import (
	"context"

	"github.com/carson-networks/ledger/internal/service"
)

type CreateAccount struct {
	Number      string
	HolderName  string
	AccountType string

	Account *service.Account
}

func (c *CreateAccount) Perform(ctx context.Context, ledger *service.LedgerService) error {
	account, err := ledger.CreateAccount(ctx, c.Number, c.HolderName, c.AccountType)
	if err != nil {
		return err
	}

	c.Account = account
	return nil
}

type UpdateHolderName struct {
	Number     string
	HolderName string
}

func (u *UpdateHolderName) Perform(ctx context.Context, ledger *service.LedgerService) error {
	return ledger.UpdateHolderName(ctx, u.Number, u.HolderName)
}
