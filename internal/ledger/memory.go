package ledger

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store. It is the reference implementation
// used by tests and by sessions that do not persist; data is lost on exit.
type MemoryStore struct {
	mu           sync.RWMutex
	transactions []*Transaction
	goals        []*SavingsGoal
}

// NewMemoryStore creates an empty in-memory ledger store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddTransaction appends a transaction after validating its invariants.
func (s *MemoryStore) AddTransaction(ctx context.Context, t *Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("AddTransaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.transactions {
		if existing.ID == t.ID {
			return fmt.Errorf("AddTransaction: duplicate id %s", t.ID)
		}
	}

	stored := *t
	s.transactions = append(s.transactions, &stored)
	return nil
}

// UpdateTransaction replaces the mutable fields of the transaction with the
// given id. The id itself is immutable.
func (s *MemoryStore) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.transactions {
		if t.ID != id {
			continue
		}
		updated := *t
		if patch.Amount != nil {
			updated.Amount = *patch.Amount
		}
		if patch.Category != nil {
			updated.Category = *patch.Category
		}
		if patch.Date != nil {
			updated.Date = *patch.Date
		}
		if patch.Type != nil {
			updated.Type = *patch.Type
		}
		if err := updated.Validate(); err != nil {
			return fmt.Errorf("UpdateTransaction: %w", err)
		}
		*t = updated
		return nil
	}
	return fmt.Errorf("UpdateTransaction: transaction not found: %s", id)
}

// RemoveTransaction deletes the transaction with the given id.
func (s *MemoryStore) RemoveTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("RemoveTransaction: transaction not found: %s", id)
}

// TransactionsForYear returns transactions dated in the given year, in
// insertion order.
func (s *MemoryStore) TransactionsForYear(ctx context.Context, year string) ([]*Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Transaction
	for _, t := range s.transactions {
		if t.Year() == year {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

// AddGoal appends a savings goal.
func (s *MemoryStore) AddGoal(ctx context.Context, g *SavingsGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *g
	s.goals = append(s.goals, &stored)
	return nil
}

// UpdateGoal replaces the goal with the same id.
func (s *MemoryStore) UpdateGoal(ctx context.Context, g *SavingsGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.goals {
		if existing.ID == g.ID {
			updated := *g
			s.goals[i] = &updated
			return nil
		}
	}
	return fmt.Errorf("UpdateGoal: goal not found: %s", g.ID)
}

// Goals returns all savings goals in insertion order.
func (s *MemoryStore) Goals(ctx context.Context) ([]*SavingsGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*SavingsGoal, 0, len(s.goals))
	for _, g := range s.goals {
		copied := *g
		result = append(result, &copied)
	}
	return result, nil
}

// Ensure MemoryStore implements the Store interface.
var _ Store = (*MemoryStore)(nil)
