package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/service"
)

func (c *Commands) createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "open a new account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "number", Aliases: []string{"n"}, Required: true, Usage: "account number"},
			&cli.StringFlag{Name: "holder", Required: true, Usage: "holder name"},
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "regular", Usage: "regular, savings or checking"},
		},
		Action: c.wrap("Create", func(cCtx *cli.Context, logData *logging.LogData) error {
			create := &actions.CreateAccount{
				Number:      cCtx.String("number"),
				HolderName:  cCtx.String("holder"),
				AccountType: cCtx.String("type"),
			}
			logData.AddData("number", create.Number)

			if err := c.process(cCtx, logData, create); err != nil {
				return err
			}

			c.success("Created %s account %s for %s", create.Account.Type(), create.Account.Number(), create.Account.HolderName())
			return nil
		}),
	}
}

func (c *Commands) balanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "balance",
		Usage:     "show one account",
		ArgsUsage: "NUMBER",
		Action: c.wrap("Balance", func(cCtx *cli.Context, logData *logging.LogData) error {
			if err := requireArgs(cCtx, 1); err != nil {
				return err
			}
			get := &actions.GetAccount{Number: cCtx.Args().Get(0)}
			logData.AddData("number", get.Number)

			if err := c.process(cCtx, logData, get); err != nil {
				return err
			}

			renderAccounts(c.Out, []*service.Account{get.Account})
			return nil
		}),
	}
}

func (c *Commands) accountsCommand() *cli.Command {
	return &cli.Command{
		Name:  "accounts",
		Usage: "list every account",
		Action: c.wrap("Accounts", func(cCtx *cli.Context, logData *logging.LogData) error {
			list := &actions.ListAccounts{}
			if err := c.process(cCtx, logData, list); err != nil {
				return err
			}
			logData.AddData("count", len(list.Accounts))

			if len(list.Accounts) == 0 {
				c.success("No accounts")
				return nil
			}
			renderAccounts(c.Out, list.Accounts)
			return nil
		}),
	}
}

func (c *Commands) renameCommand() *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "change the holder name of an account",
		ArgsUsage: "NUMBER NAME",
		Action: c.wrap("Rename", func(cCtx *cli.Context, logData *logging.LogData) error {
			if err := requireArgs(cCtx, 2); err != nil {
				return err
			}
			rename := &actions.UpdateHolderName{Number: cCtx.Args().Get(0), HolderName: cCtx.Args().Get(1)}
			logData.AddData("number", rename.Number)

			if err := c.process(cCtx, logData, rename); err != nil {
				return err
			}

			c.success("Account %s is now held by %s", rename.Number, rename.HolderName)
			return nil
		}),
	}
}

func (c *Commands) historyCommand() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "list the transactions of an account",
		ArgsUsage: "NUMBER",
		Action: c.wrap("History", func(cCtx *cli.Context, logData *logging.LogData) error {
			if err := requireArgs(cCtx, 1); err != nil {
				return err
			}
			history := &actions.TransactionHistory{Number: cCtx.Args().Get(0)}
			logData.AddData("number", history.Number)

			if err := c.process(cCtx, logData, history); err != nil {
				return err
			}
			logData.AddData("count", len(history.Transactions))

			if len(history.Transactions) == 0 {
				c.success("No transactions for %s", history.Number)
				return nil
			}
			renderTransactions(c.Out, history.Transactions)
			return nil
		}),
	}
}
