package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
)

func (c *Commands) statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "report the storage backend and ledger size",
		Action: c.wrap("Status", func(cCtx *cli.Context, logData *logging.LogData) error {
			status := &actions.Status{}
			if err := c.process(cCtx, logData, status); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(c.Out, "Storage: %s\n", c.Backend)
			_, _ = fmt.Fprintf(c.Out, "Accounts: %d\n", status.Stats.Accounts)
			_, _ = fmt.Fprintf(c.Out, "Transactions: %d\n", status.Stats.Transactions)
			_, _ = fmt.Fprintf(c.Out, "Next transaction: %s\n", status.Stats.NextTransactionID)
			return nil
		}),
	}
}
