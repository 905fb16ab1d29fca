package storage

import (
	"context"
	"path/filepath"
	"testing"

	"kakeibo/internal/ledger"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDatabase failed: %v", err)
	}
	return db
}

func TestSQLiteRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tx := &ledger.Transaction{
		ID:       "tx-1",
		Amount:   -298,
		Category: ledger.CategoryFood,
		Date:     "2026-01-15",
		Type:     ledger.TypeExpense,
	}
	if err := db.AddTransaction(ctx, tx); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	got, err := db.TransactionsForYear(ctx, "2026")
	if err != nil {
		t.Fatalf("TransactionsForYear failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "tx-1" || got[0].Amount != -298 {
		t.Fatalf("unexpected transactions: %+v", got)
	}

	if err := db.RemoveTransaction(ctx, "tx-1"); err != nil {
		t.Fatalf("RemoveTransaction failed: %v", err)
	}
	got, _ = db.TransactionsForYear(ctx, "2026")
	if len(got) != 0 {
		t.Fatalf("expected empty after removal, got %d", len(got))
	}
}

func TestSQLiteInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	ids := []string{"a", "b", "c"}
	for _, id := range ids {
		tx := &ledger.Transaction{ID: id, Amount: -100, Category: ledger.CategoryOther, Date: "2026-07-01", Type: ledger.TypeExpense}
		if err := db.AddTransaction(ctx, tx); err != nil {
			t.Fatalf("AddTransaction(%s) failed: %v", id, err)
		}
	}

	got, err := db.TransactionsForYear(ctx, "2026")
	if err != nil {
		t.Fatalf("TransactionsForYear failed: %v", err)
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSQLiteUpdate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tx := &ledger.Transaction{ID: "tx-1", Amount: -100, Category: ledger.CategoryFood, Date: "2026-02-01", Type: ledger.TypeExpense}
	if err := db.AddTransaction(ctx, tx); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	cat := ledger.CategoryUtility
	if err := db.UpdateTransaction(ctx, "tx-1", ledger.TransactionPatch{Category: &cat}); err != nil {
		t.Fatalf("UpdateTransaction failed: %v", err)
	}

	got, _ := db.TransactionsForYear(ctx, "2026")
	if got[0].Category != ledger.CategoryUtility {
		t.Errorf("category = %s, want utility", got[0].Category)
	}

	bad := 50.0
	if err := db.UpdateTransaction(ctx, "tx-1", ledger.TransactionPatch{Amount: &bad}); err == nil {
		t.Error("expected invariant error on positive expense")
	}
}

func TestSQLiteGoals(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	g := &ledger.SavingsGoal{ID: "g1", Title: "自転車", Target: 50000, Current: 15000, Deadline: "2026-02-15", Emoji: "🚲"}
	if err := db.AddGoal(ctx, g); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	g.Current = 20000
	if err := db.UpdateGoal(ctx, g); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	goals, err := db.Goals(ctx)
	if err != nil {
		t.Fatalf("Goals failed: %v", err)
	}
	if len(goals) != 1 || goals[0].Current != 20000 {
		t.Fatalf("unexpected goals: %+v", goals)
	}
}
