package ledger

import (
	"context"
	"testing"
)

func TestAddTransactionRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tx := &Transaction{
		ID:       "tx-1",
		Amount:   -450,
		Category: CategoryFood,
		Date:     "2026-03-14",
		Type:     TypeExpense,
	}

	if err := store.AddTransaction(ctx, tx); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	got, err := store.TransactionsForYear(ctx, "2026")
	if err != nil {
		t.Fatalf("TransactionsForYear failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "tx-1" {
		t.Fatalf("expected tx-1 in 2026, got %v", got)
	}

	other, err := store.TransactionsForYear(ctx, "2025")
	if err != nil {
		t.Fatalf("TransactionsForYear failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no transactions in 2025, got %d", len(other))
	}

	if err := store.RemoveTransaction(ctx, "tx-1"); err != nil {
		t.Fatalf("RemoveTransaction failed: %v", err)
	}
	got, _ = store.TransactionsForYear(ctx, "2026")
	if len(got) != 0 {
		t.Fatalf("expected empty year after removal, got %d", len(got))
	}
}

func TestAddTransactionInvariants(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tests := []struct {
		name string
		tx   Transaction
	}{
		{
			name: "zero amount",
			tx:   Transaction{ID: "a", Amount: 0, Category: CategoryOther, Date: "2026-01-01", Type: TypeExpense},
		},
		{
			name: "negative income",
			tx:   Transaction{ID: "b", Amount: -100, Category: CategoryOther, Date: "2026-01-01", Type: TypeIncome},
		},
		{
			name: "positive expense",
			tx:   Transaction{ID: "c", Amount: 100, Category: CategoryOther, Date: "2026-01-01", Type: TypeExpense},
		},
		{
			name: "bad date",
			tx:   Transaction{ID: "d", Amount: -100, Category: CategoryOther, Date: "01/02/2026", Type: TypeExpense},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.AddTransaction(ctx, &tt.tx); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestTransactionsForYearInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ids := []string{"first", "second", "third"}
	for _, id := range ids {
		tx := &Transaction{ID: id, Amount: -100, Category: CategoryFood, Date: "2026-05-01", Type: TypeExpense}
		if err := store.AddTransaction(ctx, tx); err != nil {
			t.Fatalf("AddTransaction(%s) failed: %v", id, err)
		}
	}

	got, err := store.TransactionsForYear(ctx, "2026")
	if err != nil {
		t.Fatalf("TransactionsForYear failed: %v", err)
	}
	if len(got) != len(ids) {
		t.Fatalf("expected %d transactions, got %d", len(ids), len(got))
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestUpdateTransaction(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tx := &Transaction{ID: "tx-1", Amount: -298, Category: CategoryFood, Date: "2026-02-01", Type: TypeExpense}
	if err := store.AddTransaction(ctx, tx); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	newCat := CategoryShopping
	newAmount := -500.0
	if err := store.UpdateTransaction(ctx, "tx-1", TransactionPatch{Amount: &newAmount, Category: &newCat}); err != nil {
		t.Fatalf("UpdateTransaction failed: %v", err)
	}

	got, _ := store.TransactionsForYear(ctx, "2026")
	if got[0].Amount != -500 || got[0].Category != CategoryShopping {
		t.Errorf("patch not applied: %+v", got[0])
	}
	if got[0].ID != "tx-1" {
		t.Errorf("id changed on update: %s", got[0].ID)
	}

	// An update breaking the sign/type invariant must be rejected.
	badAmount := 100.0
	if err := store.UpdateTransaction(ctx, "tx-1", TransactionPatch{Amount: &badAmount}); err == nil {
		t.Error("expected invariant error on positive expense, got nil")
	}
}

func TestGoals(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	g := &SavingsGoal{ID: "g1", Title: "ハワイ旅行", Target: 400000, Current: 120000, Deadline: "2026-09-01", Emoji: "✈️"}
	if err := store.AddGoal(ctx, g); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	g.Current = 150000
	if err := store.UpdateGoal(ctx, g); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	goals, err := store.Goals(ctx)
	if err != nil {
		t.Fatalf("Goals failed: %v", err)
	}
	if len(goals) != 1 || goals[0].Current != 150000 {
		t.Fatalf("unexpected goals: %+v", goals)
	}
	if goals[0].Progress() != 37 {
		t.Errorf("Progress() = %d, want 37", goals[0].Progress())
	}
}
