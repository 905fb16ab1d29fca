package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"kakeibo/internal/config"
	"kakeibo/internal/ledger"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string           { return "goals" }
func (*goalsCmd) Synopsis() string       { return "show savings goals and their progress" }
func (*goalsCmd) SetFlags(*flag.FlagSet) {}
func (*goalsCmd) Usage() string {
	return `kakeibo goals

  Lists every savings goal with its progress and the amount to put aside
  each month to reach the target by the deadline.
`
}

func (*goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore(config.Load())
	if err != nil {
		return fail(err)
	}
	goals, err := store.Goals(ctx)
	if err != nil {
		return fail(fmt.Errorf("goals: %w", err))
	}

	now := time.Now()
	for _, g := range goals {
		fmt.Printf("%s %s  %s / %s (%d%%)\n", g.Emoji, g.Title, yen(g.Current), yen(g.Target), g.Progress())
		if months := g.MonthsRemaining(now); months > 0 && g.Current < g.Target {
			fmt.Printf("   月々 %s (%sまで)\n", yen((g.Target-g.Current)/float64(months)), g.Deadline)
		}
	}
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	title    string
	target   float64
	deadline string
	emoji    string
}

func (*addGoalCmd) Name() string     { return "addgoal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `kakeibo addgoal -title <title> -target <yen> -deadline YYYY-MM-DD [-emoji <emoji>]

  Creates a savings goal starting from zero.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "What the goal is for.")
	f.Float64Var(&c.target, "target", 0, "Target amount in yen.")
	f.StringVar(&c.deadline, "deadline", "", "Date the target should be reached by.")
	f.StringVar(&c.emoji, "emoji", "💰", "Emoji shown next to the goal.")
}

func (c *addGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" || c.target <= 0 {
		return fail(fmt.Errorf("addgoal: -title and a positive -target are required"))
	}
	if _, err := time.Parse(ledger.DateFormat, c.deadline); err != nil {
		return fail(fmt.Errorf("addgoal: bad -deadline: %w", err))
	}

	store, err := openStore(config.Load())
	if err != nil {
		return fail(err)
	}
	g := &ledger.SavingsGoal{
		ID:       uuid.NewString(),
		Title:    c.title,
		Target:   c.target,
		Deadline: c.deadline,
		Emoji:    c.emoji,
	}
	if err := store.AddGoal(ctx, g); err != nil {
		return fail(fmt.Errorf("addgoal: %w", err))
	}
	fmt.Printf("%s %s %s\n", g.Emoji, g.Title, yen(g.Target))
	return subcommands.ExitSuccess
}

type depositCmd struct {
	id     string
	amount float64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "put money toward a savings goal" }
func (*depositCmd) Usage() string {
	return `kakeibo deposit -id <goal-id> -amount <yen>

  Adds the amount to the goal's saved total.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal.")
	f.Float64Var(&c.amount, "amount", 0, "Amount to add in yen, positive.")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.amount <= 0 {
		return fail(fmt.Errorf("deposit: -id and a positive -amount are required"))
	}

	store, err := openStore(config.Load())
	if err != nil {
		return fail(err)
	}
	goals, err := store.Goals(ctx)
	if err != nil {
		return fail(fmt.Errorf("deposit: %w", err))
	}

	for _, g := range goals {
		if g.ID != c.id {
			continue
		}
		g.Current += c.amount
		if err := store.UpdateGoal(ctx, g); err != nil {
			return fail(fmt.Errorf("deposit: %w", err))
		}
		fmt.Printf("%s %s  %s / %s (%d%%)\n", g.Emoji, g.Title, yen(g.Current), yen(g.Target), g.Progress())
		return subcommands.ExitSuccess
	}
	return fail(fmt.Errorf("deposit: no goal with id %s", c.id))
}
