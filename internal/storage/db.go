package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kakeibo/internal/ledger"
)

// Database is a sqlite-backed ledger store. It satisfies ledger.Store so
// the pipeline commits into it exactly as it would into the in-memory one.
type Database struct {
	db *gorm.DB
}

// NewDatabase opens (or creates) the sqlite database at dbPath and
// migrates the schema.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&transactionRow{}, &goalRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Database{db: db}, nil
}

// AddTransaction stores a validated transaction.
func (d *Database) AddTransaction(ctx context.Context, t *ledger.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("AddTransaction: %w", err)
	}

	row := rowFromTransaction(t)
	if err := d.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("AddTransaction: %w", err)
	}
	return nil
}

// UpdateTransaction applies a patch to the stored transaction. The updated
// row must still satisfy the amount/type invariant.
func (d *Database) UpdateTransaction(ctx context.Context, id string, patch ledger.TransactionPatch) error {
	var row transactionRow
	if err := d.db.WithContext(ctx).Where("tx_id = ?", id).First(&row).Error; err != nil {
		return fmt.Errorf("UpdateTransaction: transaction not found: %s: %w", id, err)
	}

	t := row.toTransaction()
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("UpdateTransaction: %w", err)
	}

	updates := map[string]interface{}{
		"amount":   t.Amount,
		"category": string(t.Category),
		"date":     t.Date,
		"type":     string(t.Type),
	}
	if err := d.db.WithContext(ctx).Model(&transactionRow{}).Where("tx_id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("UpdateTransaction: %w", err)
	}
	return nil
}

// RemoveTransaction deletes the transaction with the given id.
func (d *Database) RemoveTransaction(ctx context.Context, id string) error {
	res := d.db.WithContext(ctx).Where("tx_id = ?", id).Delete(&transactionRow{})
	if res.Error != nil {
		return fmt.Errorf("RemoveTransaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("RemoveTransaction: transaction not found: %s", id)
	}
	return nil
}

// TransactionsForYear returns transactions dated in the given calendar
// year, ordered by insertion.
func (d *Database) TransactionsForYear(ctx context.Context, year string) ([]*ledger.Transaction, error) {
	var rows []transactionRow
	err := d.db.WithContext(ctx).
		Where("date LIKE ?", year+"-%").
		Order("seq").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("TransactionsForYear: %w", err)
	}

	result := make([]*ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toTransaction())
	}
	return result, nil
}

// AddGoal stores a savings goal.
func (d *Database) AddGoal(ctx context.Context, g *ledger.SavingsGoal) error {
	row := rowFromGoal(g)
	if err := d.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("AddGoal: %w", err)
	}
	return nil
}

// UpdateGoal replaces the stored goal with the same id.
func (d *Database) UpdateGoal(ctx context.Context, g *ledger.SavingsGoal) error {
	updates := map[string]interface{}{
		"title":    g.Title,
		"target":   g.Target,
		"current":  g.Current,
		"deadline": g.Deadline,
		"emoji":    g.Emoji,
	}
	res := d.db.WithContext(ctx).Model(&goalRow{}).Where("goal_id = ?", g.ID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("UpdateGoal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("UpdateGoal: goal not found: %s", g.ID)
	}
	return nil
}

// Goals returns all savings goals in insertion order.
func (d *Database) Goals(ctx context.Context) ([]*ledger.SavingsGoal, error) {
	var rows []goalRow
	if err := d.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("Goals: %w", err)
	}

	result := make([]*ledger.SavingsGoal, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toGoal())
	}
	return result, nil
}

// Ensure Database implements the ledger store contract.
var _ ledger.Store = (*Database)(nil)
