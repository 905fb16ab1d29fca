package pipeline

import (
	"errors"
	"testing"
)

func TestDecodeReceipt(t *testing.T) {
	raw := `{"store_name":"スーパーマルエツ","purchase_date":"2026-08-01","total_amount":536,"tax_amount":39,"items":[{"name":"卵","quantity":1,"price":298},{"name":"牛乳","quantity":1,"price":238}]}`

	payload, err := decodeReceipt(raw)
	if err != nil {
		t.Fatalf("decodeReceipt failed: %v", err)
	}
	if payload.StoreName != "スーパーマルエツ" {
		t.Errorf("StoreName = %q", payload.StoreName)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(payload.Items))
	}

	res := payload.toResult()
	if res.Items[0].Name != "卵" || res.Items[0].Price != 298 {
		t.Errorf("item 0 = %+v", res.Items[0])
	}
	if res.Items[1].Name != "牛乳" || res.Items[1].Price != 238 {
		t.Errorf("item 1 = %+v", res.Items[1])
	}
	for i, item := range res.Items {
		if item.Category != defaultItemCategory {
			t.Errorf("item %d category = %q, want default", i, item.Category)
		}
	}
	if res.TotalAmount != 536 || res.TaxAmount != 39 {
		t.Errorf("header fields not preserved: %+v", res)
	}
}

func TestDecodeReceiptWithCodeFences(t *testing.T) {
	raw := "```json\n{\"items\":[{\"name\":\"食パン\",\"quantity\":1,\"price\":450}]}\n```"

	payload, err := decodeReceipt(raw)
	if err != nil {
		t.Fatalf("decodeReceipt failed: %v", err)
	}
	if len(payload.Items) != 1 || payload.Items[0].Price != 450 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeReceiptMalformed(t *testing.T) {
	_, err := decodeReceipt("sorry, I cannot read this receipt")
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain object",
			raw:  `{"items":[]}`,
			want: `{"items":[]}`,
		},
		{
			name: "fenced with language",
			raw:  "```json\n{\"items\":[]}\n```",
			want: `{"items":[]}`,
		},
		{
			name: "fenced without language",
			raw:  "```\n{\"items\":[]}\n```",
			want: `{"items":[]}`,
		},
		{
			name: "chatter around the object",
			raw:  "Here is the result:\n{\"items\":[]}\nHope that helps!",
			want: `{"items":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelJSON(tt.raw); got != tt.want {
				t.Errorf("cleanModelJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
