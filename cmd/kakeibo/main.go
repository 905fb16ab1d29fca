package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"kakeibo/internal/cli"
	"kakeibo/internal/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cli.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	ctx := logger.WithContext(context.Background(), logger.New())
	os.Exit(int(commander.Execute(ctx)))
}
