// Package catalog holds the in-memory item list fetched from the backend and
// the pure filter engine evaluated over it.
package catalog

import (
	"strings"

	"github.com/rajservice12693/alankar/internal/model"
)

// AllCategories is the sentinel category matching every item.
const AllCategories = "All"

// PriceRange is an inclusive [Min, Max] price bound.
type PriceRange struct {
	Min float64
	Max float64
}

// Filter is the tuple driving catalog display. The zero value is the cleared
// state: applying it returns the input list unchanged, so items with zero or
// negative prices are never dropped by a default range.
type Filter struct {
	Category  string
	Materials []int64
	Price     *PriceRange
	Search    string
}

// IsZero reports whether no filter dimension is active. An empty category and
// the "All" sentinel are equivalent.
func (f Filter) IsZero() bool {
	return (f.Category == "" || f.Category == AllCategories) &&
		len(f.Materials) == 0 &&
		f.Price == nil &&
		strings.TrimSpace(f.Search) == ""
}

// Apply returns the subset of items matching every active dimension of the
// filter. Dimensions are ANDed; the search text matches case-insensitively
// against item name OR description. Apply is pure and never fails; an empty
// result is a valid output.
func Apply(items []model.Item, f Filter) []model.Item {
	if f.IsZero() {
		return items
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if f.Category != "" && f.Category != AllCategories && item.CategoryName != f.Category {
			continue
		}
		if len(f.Materials) > 0 && !hasMaterial(f.Materials, item.MaterialID) {
			continue
		}
		if f.Price != nil && (item.Price < f.Price.Min || item.Price > f.Price.Max) {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func hasMaterial(ids []int64, id int64) bool {
	for _, want := range ids {
		if want == id {
			return true
		}
	}
	return false
}

// matchesSearch reports whether the lowercased needle occurs in the item's
// name or description.
func matchesSearch(item model.Item, needle string) bool {
	return strings.Contains(strings.ToLower(item.ItemName), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}

// CategoryOptions derives the category filter options from the item list
// itself: "All" followed by the distinct category names in first-seen order.
// A category with zero items never appears.
func CategoryOptions(items []model.Item) []string {
	options := []string{AllCategories}
	seen := make(map[string]bool)
	for _, item := range items {
		if item.CategoryName == "" || seen[item.CategoryName] {
			continue
		}
		seen[item.CategoryName] = true
		options = append(options, item.CategoryName)
	}
	return options
}
