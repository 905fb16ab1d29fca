package cli

import (
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kakeibo/internal/config"
	"kakeibo/internal/storage"
)

// Commands lists every subcommand the kakeibo binary registers.
var Commands = []subcommands.Command{
	&scanCmd{},
	&addCmd{},
	&listCmd{},
	&removeCmd{},
	&goalsCmd{},
	&addGoalCmd{},
	&depositCmd{},
}

// openStore opens the sqlite ledger store configured by the environment.
func openStore(cfg *config.Config) (*storage.Database, error) {
	store, err := storage.NewDatabase(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger at %s: %w", cfg.DBPath, err)
	}
	return store, nil
}

// fail prints the error and maps it to a non-zero exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

// yen formats a whole-yen amount for display.
func yen(amount float64) string {
	return fmt.Sprintf("¥%.0f", amount)
}
