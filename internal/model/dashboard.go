package model

// DashboardCount is the aggregate the backend returns for the admin dashboard.
type DashboardCount struct {
	Total              int            `json:"total"`
	CategoryTotal      int            `json:"categoryTotal"`
	MaterialTotal      int            `json:"materialTotal"`
	TotalMaterialCount int            `json:"totalMaterialCount"`
	MaterialList       []string       `json:"materialList"`
	CategoryWise       []CategoryWise `json:"categoryWise"`
}

// CategoryWise breaks an item count down per category, with a further
// per-material split keyed by material name.
type CategoryWise struct {
	CategoryName     string         `json:"categoryName"`
	CategoryCount    int            `json:"categoryCount"`
	CategoryMaterial map[string]int `json:"categoryMaterial"`
}
