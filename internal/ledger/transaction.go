package ledger

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date format used throughout the ledger.
// Transactions carry a day, never a time of day.
const DateFormat = "2006-01-02"

// TransactionType tells income from expense.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Transaction is one ledger entry. Amount is signed: negative for an
// expense, positive for income, never zero for a stored transaction.
// The ID is assigned on creation and immutable afterwards.
type Transaction struct {
	ID       string
	Amount   float64
	Category Category
	Date     string // calendar date, DateFormat
	Type     TransactionType
}

// Validate checks the amount/type invariant before a transaction is stored.
func (t *Transaction) Validate() error {
	switch {
	case t.Amount == 0:
		return fmt.Errorf("transaction %s: amount must not be zero", t.ID)
	case t.Amount < 0 && t.Type != TypeExpense:
		return fmt.Errorf("transaction %s: negative amount requires type expense, got %q", t.ID, t.Type)
	case t.Amount > 0 && t.Type != TypeIncome:
		return fmt.Errorf("transaction %s: positive amount requires type income, got %q", t.ID, t.Type)
	}
	if _, err := time.Parse(DateFormat, t.Date); err != nil {
		return fmt.Errorf("transaction %s: invalid date %q: %w", t.ID, t.Date, err)
	}
	return nil
}

// Year returns the calendar year of the transaction date as a string.
func (t *Transaction) Year() string {
	if len(t.Date) < 4 {
		return ""
	}
	return t.Date[:4]
}

// Today returns the current calendar date in DateFormat.
func Today() string {
	return time.Now().Format(DateFormat)
}

// TransactionPatch carries the mutable fields of a transaction for an
// update. Nil fields are left unchanged.
type TransactionPatch struct {
	Amount   *float64
	Category *Category
	Date     *string
	Type     *TransactionType
}
