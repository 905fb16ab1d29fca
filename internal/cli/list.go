package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"kakeibo/internal/config"
	"kakeibo/internal/ledger"
)

type listCmd struct {
	year string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the year's transactions with balance and daily budget" }
func (*listCmd) Usage() string {
	return `kakeibo list [-year YYYY]

  Prints every transaction recorded for the year in the order it was
  entered, followed by the running balance and the remaining daily budget
  for the current month.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "year", "", "Year to list. Defaults to the current year.")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year := c.year
	if year == "" {
		year = time.Now().Format("2006")
	}

	store, err := openStore(config.Load())
	if err != nil {
		return fail(err)
	}
	txs, err := store.TransactionsForYear(ctx, year)
	if err != nil {
		return fail(fmt.Errorf("list: %w", err))
	}

	for _, t := range txs {
		fmt.Printf("%s  %s  %s %s  %s\n", t.ID, t.Date, t.Category.Emoji(), t.Category.Label(), yen(t.Amount))
	}

	balance := ledger.Balance(txs)
	fmt.Printf("\n残高: %s\n", yen(balance))
	fmt.Printf("1日あたり: %s\n", yen(ledger.DailyBudget(balance, time.Now())))
	return subcommands.ExitSuccess
}
