package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"kakeibo/internal/config"
	"kakeibo/internal/ledger"
)

type addCmd struct {
	amount   float64
	category string
	date     string
	income   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction by hand" }
func (*addCmd) Usage() string {
	return `kakeibo add -amount <yen> [-category <name>] [-date YYYY-MM-DD] [-income]

  Records a single transaction without going through a receipt scan.
  The amount is given as a positive number; -income records it as income,
  otherwise as an expense.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount in yen, positive.")
	f.StringVar(&c.category, "category", string(ledger.CategoryOther), "Category name.")
	f.StringVar(&c.date, "date", "", "Calendar date. Defaults to today.")
	f.BoolVar(&c.income, "income", false, "Record as income instead of expense.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		return fail(fmt.Errorf("add: -amount must be positive"))
	}
	category, err := ledger.ParseCategory(c.category)
	if err != nil {
		return fail(fmt.Errorf("add: %w", err))
	}

	date := c.date
	if date == "" {
		date = ledger.Today()
	}

	t := &ledger.Transaction{
		ID:       uuid.NewString(),
		Amount:   -c.amount,
		Category: category,
		Date:     date,
		Type:     ledger.TypeExpense,
	}
	if c.income {
		t.Amount = c.amount
		t.Type = ledger.TypeIncome
	}

	store, err := openStore(config.Load())
	if err != nil {
		return fail(err)
	}
	if err := store.AddTransaction(ctx, t); err != nil {
		return fail(fmt.Errorf("add: %w", err))
	}

	fmt.Printf("%s %s %s %s\n", t.Date, category.Emoji(), category.Label(), yen(t.Amount))
	return subcommands.ExitSuccess
}
