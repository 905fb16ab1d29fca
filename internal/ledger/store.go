package ledger

import (
	"context"
	"time"
)

// Store is the ledger contract the pipeline writes into. Writes must be
// visible to subsequent reads within the same process; insertion order is
// preserved by the year query.
type Store interface {
	AddTransaction(ctx context.Context, t *Transaction) error
	UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) error
	RemoveTransaction(ctx context.Context, id string) error

	// TransactionsForYear returns transactions whose date falls in the
	// given calendar year ("2026"), in insertion order.
	TransactionsForYear(ctx context.Context, year string) ([]*Transaction, error)

	AddGoal(ctx context.Context, g *SavingsGoal) error
	UpdateGoal(ctx context.Context, g *SavingsGoal) error
	Goals(ctx context.Context) ([]*SavingsGoal, error)
}

// Balance sums all transaction amounts for the given year.
func Balance(txs []*Transaction) float64 {
	var total float64
	for _, t := range txs {
		total += t.Amount
	}
	return total
}

// DailyBudget spreads a positive balance over the remaining days of the
// month, today included. A non-positive balance yields zero.
func DailyBudget(balance float64, now time.Time) float64 {
	if balance <= 0 {
		return 0
	}
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	remaining := lastDay - now.Day() + 1
	return balance / float64(remaining)
}
