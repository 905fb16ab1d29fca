package storage

import "kakeibo/internal/ledger"

// transactionRow is the sqlite schema for a ledger transaction. Seq is an
// autoincrement key used to preserve insertion order on reads.
type transactionRow struct {
	Seq      uint   `gorm:"primaryKey;autoIncrement"`
	TxID     string `gorm:"uniqueIndex"`
	Amount   float64
	Category string
	Date     string `gorm:"index"`
	Type     string
}

func (transactionRow) TableName() string { return "transactions" }

func rowFromTransaction(t *ledger.Transaction) *transactionRow {
	return &transactionRow{
		TxID:     t.ID,
		Amount:   t.Amount,
		Category: string(t.Category),
		Date:     t.Date,
		Type:     string(t.Type),
	}
}

func (r *transactionRow) toTransaction() *ledger.Transaction {
	return &ledger.Transaction{
		ID:       r.TxID,
		Amount:   r.Amount,
		Category: ledger.Category(r.Category),
		Date:     r.Date,
		Type:     ledger.TransactionType(r.Type),
	}
}

// goalRow is the sqlite schema for a savings goal.
type goalRow struct {
	Seq      uint   `gorm:"primaryKey;autoIncrement"`
	GoalID   string `gorm:"uniqueIndex"`
	Title    string
	Target   float64
	Current  float64
	Deadline string
	Emoji    string
}

func (goalRow) TableName() string { return "goals" }

func rowFromGoal(g *ledger.SavingsGoal) *goalRow {
	return &goalRow{
		GoalID:   g.ID,
		Title:    g.Title,
		Target:   g.Target,
		Current:  g.Current,
		Deadline: g.Deadline,
		Emoji:    g.Emoji,
	}
}

func (r *goalRow) toGoal() *ledger.SavingsGoal {
	return &ledger.SavingsGoal{
		ID:       r.GoalID,
		Title:    r.Title,
		Target:   r.Target,
		Current:  r.Current,
		Deadline: r.Deadline,
		Emoji:    r.Emoji,
	}
}
