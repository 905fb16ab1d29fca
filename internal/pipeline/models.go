package pipeline

import "kakeibo/internal/ledger"

// Item is one unconfirmed extracted line item awaiting user review.
// Price is in whole yen; an item with Price 0 is never committed.
type Item struct {
	Name     string
	Price    int64
	Category ledger.Category
}

// defaultItemCategory is assigned to items extracted by the vision-LLM
// engines; the user reassigns categories during review.
const defaultItemCategory = ledger.CategoryFood

// Result is a successful extraction: a non-empty ordered sequence of
// candidate items plus the receipt header fields the model extracted.
// The header fields are informational only; they never gate acceptance.
type Result struct {
	Items []Item

	StoreName    string
	PurchaseDate string
	TotalAmount  float64
	TaxAmount    float64
}
