package ledger

import "time"

// SavingsGoal is a savings target with a deadline. Read-mostly: the
// ingestion pipeline never mutates goals.
type SavingsGoal struct {
	ID       string
	Title    string
	Target   float64 // positive
	Current  float64 // non-negative, conceptually <= Target (not enforced)
	Deadline string  // calendar date, DateFormat
	Emoji    string
}

// MonthsRemaining returns the number of whole months between now and the
// deadline. Zero or negative means the deadline is this month or past.
func (g *SavingsGoal) MonthsRemaining(now time.Time) int {
	deadline, err := time.Parse(DateFormat, g.Deadline)
	if err != nil {
		return 0
	}
	return (deadline.Year()-now.Year())*12 + int(deadline.Month()) - int(now.Month())
}

// Progress returns the saved fraction in percent, clamped to [0, 100].
func (g *SavingsGoal) Progress() int {
	if g.Target <= 0 {
		return 0
	}
	p := int(g.Current / g.Target * 100)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
