package commands

import (
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/carson-networks/ledger/internal/service"
)

func renderAccounts(out io.Writer, accounts []*service.Account) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Number", "Holder", "Type", "Balance", "Rate %", "Overdraft"})
	table.SetAutoFormatHeaders(false)

	for _, account := range accounts {
		rate, overdraft := "", ""
		switch account.Type() {
		case service.AccountTypeSavings:
			rate = account.InterestRate().String()
		case service.AccountTypeChecking:
			overdraft = formatAmount(account.OverdraftLimit())
		}
		table.Append([]string{
			account.Number(),
			account.HolderName(),
			account.Type().String(),
			formatAmount(account.Balance()),
			rate,
			overdraft,
		})
	}
	table.Render()
}

func renderTransactions(out io.Writer, transactions []service.Transaction) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Type", "Amount", "Balance After", "Timestamp", "Description"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, transaction := range transactions {
		table.Append([]string{
			transaction.ID,
			string(transaction.Type),
			formatAmount(transaction.Amount),
			formatAmount(transaction.BalanceAfter),
			transaction.Timestamp.Format(time.RFC3339),
			transaction.Description,
		})
	}
	table.Render()
}
