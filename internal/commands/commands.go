package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
)

// ErrRejected marks a ledger operation that was refused without a hard
// error, such as insufficient funds or an unknown account.
var ErrRejected = errors.New("rejected")

type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Commands is the ledger CLI. Every command goes through the operator.
type Commands struct {
	Logger   *logrus.Logger
	Operator processor
	Out      io.Writer
	ErrOut   io.Writer

	// Backend names the storage in use, for the status command.
	Backend string
}

func (c *Commands) App() *cli.App {
	return &cli.App{
		Name:      "ledger",
		Usage:     "bank ledger with savings interest and checking overdraft",
		Writer:    c.Out,
		ErrWriter: c.ErrOut,
		// Errors are reported by Run; urfave/cli must not exit the process.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			c.createCommand(),
			c.depositCommand(),
			c.withdrawCommand(),
			c.transferCommand(),
			c.balanceCommand(),
			c.historyCommand(),
			c.accountsCommand(),
			c.interestCommand(),
			c.renameCommand(),
			c.statusCommand(),
		},
	}
}

// Run executes the CLI and prints any failure to ErrOut.
func (c *Commands) Run(ctx context.Context, args []string) error {
	err := c.App().RunContext(ctx, args)
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintf(c.ErrOut, "Error: %v\n", err)
	}
	return err
}

func (c *Commands) wrap(name string, handler func(*cli.Context, *logging.LogData) error) cli.ActionFunc {
	return logging.CommandWrapper(name, c.Logger, handler)
}

func (c *Commands) process(cCtx *cli.Context, logData *logging.LogData, action actions.IAction) error {
	endTimer := logData.AddToExistingTiming("ledger")
	defer endTimer()
	return c.Operator.Process(cCtx.Context, action)
}

func (c *Commands) success(format string, args ...interface{}) {
	_, _ = color.New(color.FgGreen).Fprintf(c.Out, format+"\n", args...)
}

func requireArgs(cCtx *cli.Context, n int) error {
	if cCtx.NArg() != n {
		return fmt.Errorf("%s expects %s", cCtx.Command.Name, cCtx.Command.ArgsUsage)
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
