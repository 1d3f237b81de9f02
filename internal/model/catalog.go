package model

// Item is a sellable jewellery piece as returned by the backend. Category and
// material names are denormalized alongside their ids, so item lists render
// without extra lookups.
type Item struct {
	ID           int64    `json:"id"`
	ItemName     string   `json:"itemName"`
	CategoryID   int64    `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
	MaterialID   int64    `json:"materialId"`
	MaterialName string   `json:"materialName"`
	Purity       string   `json:"purity"`
	Weight       float64  `json:"weight"`
	Price        float64  `json:"price"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
}

// Category groups items and owns the set of materials valid for it. The
// embedded materials drive the cascading material dropdown in entry forms.
type Category struct {
	CategoryID   string     `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	Materials    []Material `json:"materials,omitempty"`
}

// Material is a substance (Gold, Silver, Diamond) a category can be made of.
type Material struct {
	MaterialID   string `json:"materialId"`
	MaterialName string `json:"materialName"`
}

// MaterialsFor returns the materials embedded under the category with the
// given id, or nil when the category is unknown.
func MaterialsFor(categories []Category, categoryID string) []Material {
	for _, c := range categories {
		if c.CategoryID == categoryID {
			return c.Materials
		}
	}
	return nil
}
