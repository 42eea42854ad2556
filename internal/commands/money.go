package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
)

func (c *Commands) depositCommand() *cli.Command {
	return &cli.Command{
		Name:      "deposit",
		Usage:     "credit an account",
		ArgsUsage: "NUMBER AMOUNT",
		Action: c.wrap("Deposit", func(cCtx *cli.Context, logData *logging.LogData) error {
			if err := requireArgs(cCtx, 2); err != nil {
				return err
			}
			amount, err := parseAmount(cCtx.Args().Get(1))
			if err != nil {
				return err
			}
			deposit := &actions.Deposit{Number: cCtx.Args().Get(0), Amount: amount}
			logData.AddData("number", deposit.Number)

			if err := c.process(cCtx, logData, deposit); err != nil {
				return err
			}
			if !deposit.Succeeded {
				return fmt.Errorf("deposit of %s to %s: %w", formatAmount(amount), deposit.Number, ErrRejected)
			}

			return c.reportBalance(cCtx, logData, deposit.Number, "Deposited %s to %s", formatAmount(amount), deposit.Number)
		}),
	}
}

func (c *Commands) withdrawCommand() *cli.Command {
	return &cli.Command{
		Name:      "withdraw",
		Usage:     "debit an account",
		ArgsUsage: "NUMBER AMOUNT",
		Action: c.wrap("Withdraw", func(cCtx *cli.Context, logData *logging.LogData) error {
			if err := requireArgs(cCtx, 2); err != nil {
				return err
			}
			amount, err := parseAmount(cCtx.Args().Get(1))
			if err != nil {
				return err
			}
			withdraw := &actions.Withdraw{Number: cCtx.Args().Get(0), Amount: amount}
			logData.AddData("number", withdraw.Number)

			if err := c.process(cCtx, logData, withdraw); err != nil {
				return err
			}
			if !withdraw.Succeeded {
				return fmt.Errorf("withdrawal of %s from %s: %w", formatAmount(amount), withdraw.Number, ErrRejected)
			}

			return c.reportBalance(cCtx, logData, withdraw.Number, "Withdrew %s from %s", formatAmount(amount), withdraw.Number)
		}),
	}
}

func (c *Commands) transferCommand() *cli.Command {
	return &cli.Command{
		Name:      "transfer",
		Usage:     "move funds between two accounts",
		ArgsUsage: "FROM TO AMOUNT",
		Action: c.wrap("Transfer", func(cCtx *cli.Context, logData *logging.LogData) error {
			if err := requireArgs(cCtx, 3); err != nil {
				return err
			}
			amount, err := parseAmount(cCtx.Args().Get(2))
			if err != nil {
				return err
			}
			transfer := &actions.Transfer{From: cCtx.Args().Get(0), To: cCtx.Args().Get(1), Amount: amount}
			logData.AddData("from", transfer.From)
			logData.AddData("to", transfer.To)

			if err := c.process(cCtx, logData, transfer); err != nil {
				return err
			}
			if !transfer.Succeeded {
				return fmt.Errorf("transfer of %s from %s to %s: %w", formatAmount(amount), transfer.From, transfer.To, ErrRejected)
			}

			c.success("Transferred %s from %s to %s", formatAmount(amount), transfer.From, transfer.To)
			return nil
		}),
	}
}

func (c *Commands) interestCommand() *cli.Command {
	return &cli.Command{
		Name:      "interest",
		Usage:     "credit interest to a savings account, or to all of them with --all",
		ArgsUsage: "[NUMBER]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "credit every savings account"},
		},
		Action: c.wrap("Interest", func(cCtx *cli.Context, logData *logging.LogData) error {
			if cCtx.Bool("all") {
				if err := requireArgs(cCtx, 0); err != nil {
					return err
				}
				all := &actions.ApplyInterestAll{}
				if err := c.process(cCtx, logData, all); err != nil {
					return err
				}
				logData.AddData("credited", all.Credited)
				c.success("Credited interest to %d account(s)", all.Credited)
				return nil
			}

			if err := requireArgs(cCtx, 1); err != nil {
				return err
			}
			interest := &actions.ApplyInterest{Number: cCtx.Args().Get(0)}
			logData.AddData("number", interest.Number)

			if err := c.process(cCtx, logData, interest); err != nil {
				return err
			}
			if !interest.Credited {
				return fmt.Errorf("interest on %s: %w", interest.Number, ErrRejected)
			}

			return c.reportBalance(cCtx, logData, interest.Number, "Credited interest to %s", interest.Number)
		}),
	}
}

// reportBalance prints a success line followed by the account's new balance.
func (c *Commands) reportBalance(cCtx *cli.Context, logData *logging.LogData, number, format string, args ...interface{}) error {
	get := &actions.GetAccount{Number: number}
	if err := c.process(cCtx, logData, get); err != nil {
		return err
	}

	c.success(format, args...)
	_, _ = fmt.Fprintf(c.Out, "Balance: %s\n", formatAmount(get.Account.Balance()))
	return nil
}
