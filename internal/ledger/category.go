package ledger

import "fmt"

// Category classifies a transaction or a scanned receipt item.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryShopping  Category = "shopping"
	CategoryHobbies   Category = "hobbies"
	CategoryUtility   Category = "utility"
	CategoryOther     Category = "other"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryHobbies,
	CategoryUtility,
	CategoryOther,
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

func (c Category) String() string { return string(c) }

// Emoji returns the display emoji for the category.
func (c Category) Emoji() string {
	switch c {
	case CategoryFood:
		return "🍕"
	case CategoryTransport:
		return "🚌"
	case CategoryShopping:
		return "🛍️"
	case CategoryHobbies:
		return "🎮"
	case CategoryUtility:
		return "💡"
	default:
		return "🏷️"
	}
}

// Label returns the Japanese display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "食費"
	case CategoryTransport:
		return "交通費"
	case CategoryShopping:
		return "買い物"
	case CategoryHobbies:
		return "趣味"
	case CategoryUtility:
		return "光熱費"
	default:
		return "その他"
	}
}
