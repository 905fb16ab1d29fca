package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"kakeibo/internal/config"
)

type removeCmd struct {
	id string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete a recorded transaction" }
func (*removeCmd) Usage() string {
	return `kakeibo remove -id <transaction-id>

  Deletes the transaction with the given id. Use "kakeibo list" to find ids.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete.")
}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("remove: -id is required"))
	}

	store, err := openStore(config.Load())
	if err != nil {
		return fail(err)
	}
	if err := store.RemoveTransaction(ctx, c.id); err != nil {
		return fail(fmt.Errorf("remove: %w", err))
	}
	fmt.Println("削除しました")
	return subcommands.ExitSuccess
}
