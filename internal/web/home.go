package web

import (
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rajservice12693/alankar/internal/catalog"
	"github.com/rajservice12693/alankar/internal/model"
)

// homeData feeds the storefront template.
type homeData struct {
	PageData
	Items      []model.Item
	Categories []string
	Materials  []model.Material
	Filter     catalog.Filter
	Query      url.Values
	Banner     []string
	TotalCount int
}

// HomePage handles GET /{$}: refresh the catalog, apply the filter from the
// query string, render. A failed refresh keeps whatever was loaded before.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	data := &homeData{
		PageData: PageData{Title: "Rohit Alankar Jewellery", User: GetUser(r.Context())},
		Query:    r.URL.Query(),
	}

	if err := s.Catalog.Refresh(r.Context(), s.Backend); err != nil {
		slog.Error("failed to refresh catalog", "error", err)
		if !s.Catalog.Loaded() {
			data.Error = "Could not load the catalog, please try again."
		}
	}

	materials, err := s.Backend.Materials(r.Context())
	if err != nil {
		slog.Error("failed to load materials", "error", err)
	}

	filter := parseFilter(r.URL.Query())

	data.Items = s.Catalog.Filtered(filter)
	data.Categories = s.Catalog.Categories()
	data.Materials = materials
	data.Filter = filter
	data.Banner = bannerImages(s.Catalog.Items())
	data.TotalCount = len(s.Catalog.Items())

	s.Templates.Render(w, "home.html", data)
}

// parseFilter builds the filter tuple from query parameters. Absent
// parameters leave their dimension inactive, so a bare URL is the cleared
// state.
func parseFilter(q url.Values) catalog.Filter {
	f := catalog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
	}

	for _, raw := range q["material"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.Materials = append(f.Materials, id)
		}
	}

	minRaw, maxRaw := q.Get("min"), q.Get("max")
	if minRaw != "" || maxRaw != "" {
		// An absent bound is unbounded in that direction; a zero-value Min
		// would silently drop negatively priced items from a ceiling-only
		// filter.
		pr := catalog.PriceRange{Min: -math.MaxFloat64, Max: math.MaxFloat64}
		if v, err := strconv.ParseFloat(minRaw, 64); err == nil {
			pr.Min = v
		}
		if v, err := strconv.ParseFloat(maxRaw, 64); err == nil {
			pr.Max = v
		}
		f.Price = &pr
	}

	return f
}

// bannerImages collects the lead image of each item for the page banner.
func bannerImages(items []model.Item) []string {
	const limit = 8
	var images []string
	for _, item := range items {
		if len(item.Images) == 0 {
			continue
		}
		images = append(images, item.Images[0])
		if len(images) == limit {
			break
		}
	}
	return images
}
