package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// receiptPayload mirrors the JSON object both LLM engines are instructed
// to return.
type receiptPayload struct {
	StoreName    string        `json:"store_name"`
	PurchaseDate string        `json:"purchase_date"`
	TotalAmount  float64       `json:"total_amount"`
	TaxAmount    float64       `json:"tax_amount"`
	Items        []receiptItem `json:"items"`
}

type receiptItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// decodeReceipt parses a model's textual response into a receiptPayload.
// Markdown code fences are stripped first; models ignore the no-fence
// instruction often enough that this is load-bearing.
func decodeReceipt(raw string) (*receiptPayload, error) {
	clean := cleanModelJSON(raw)

	var payload receiptPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("decode receipt: %w: %v", ErrMalformedResponse, err)
	}
	return &payload, nil
}

// toResult maps the wire payload into candidate items with the default
// category. The model's items are trusted verbatim; totals are not
// re-derived here.
func (p *receiptPayload) toResult() *Result {
	items := make([]Item, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, Item{
			Name:     strings.TrimSpace(it.Name),
			Price:    int64(it.Price),
			Category: defaultItemCategory,
		})
	}
	return &Result{
		Items:        items,
		StoreName:    p.StoreName,
		PurchaseDate: p.PurchaseDate,
		TotalAmount:  p.TotalAmount,
		TaxAmount:    p.TaxAmount,
	}
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			// Single-line weirdness; just return as-is.
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Extra safety: if there's still junk around the JSON object,
	// keep only from the first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
