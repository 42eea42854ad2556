package actions

import (
	"context"

	"github.com/carson-networks/ledger/internal/service"
)

type GetAccount struct {
	Number string

	Account *service.Account
}

func (g *GetAccount) Perform(_ context.Context, ledger *service.LedgerService) error {
	account, err := ledger.GetAccount(g.Number)
	if err != nil {
		return err
	}

	g.Account = account
	return nil
}

type ListAccounts struct {
	Accounts []*service.Account
}

func (l *ListAccounts) Perform(_ context.Context, ledger *service.LedgerService) error {
	l.Accounts = ledger.AllAccounts()
	return nil
}

type TransactionHistory struct {
	Number string

	Transactions []service.Transaction
}

func (h *TransactionHistory) Perform(_ context.Context, ledger *service.LedgerService) error {
	h.Transactions = ledger.TransactionHistory(h.Number)
	return nil
}

type Status struct {
	Stats service.Stats
}

func (s *Status) Perform(_ context.Context, ledger *service.LedgerService) error {
	s.Stats = ledger.Stats()
	return nil
}
