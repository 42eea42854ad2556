package actions

import (
	"context"

	"github.com/carson-networks/ledger/internal/service"
)

// IAction is a unit of work run by the operator against the ledger.
type IAction interface {
	Perform(ctx context.Context, ledger *service.LedgerService) error
}
