package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kakeibo/internal/ledger"
)

// Commit materializes the session's accepted items as expense transactions
// dated today and returns the accepted count. Items with price 0 are
// skipped; committing an empty session returns 0 without touching the
// store. On success the session is reset; on a store failure it is left
// intact so the user can retry.
func Commit(ctx context.Context, session *Session, store ledger.Store) (int, error) {
	today := ledger.Today()
	accepted := 0

	for _, staged := range session.Items() {
		if staged.Price <= 0 {
			continue
		}

		t := &ledger.Transaction{
			ID:       uuid.NewString(),
			Amount:   -float64(staged.Price),
			Category: staged.Category,
			Date:     today,
			Type:     ledger.TypeExpense,
		}
		if err := store.AddTransaction(ctx, t); err != nil {
			return accepted, fmt.Errorf("commit: %w", err)
		}
		accepted++
	}

	session.Reset()
	return accepted, nil
}
