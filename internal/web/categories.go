package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/rajservice12693/alankar/internal/model"
)

type categoriesData struct {
	PageData
	Categories []model.Category
	Search     string
	Name       string
}

// CategoriesPage handles GET /admin/categories.
func (s *Server) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	data := s.categoriesData(r)
	data.Success = r.URL.Query().Get("ok")
	s.Templates.Render(w, "categories.html", data)
}

// categoriesData loads the category list and applies the page search box.
func (s *Server) categoriesData(r *http.Request) *categoriesData {
	data := &categoriesData{
		PageData: PageData{Title: "Categories", User: GetUser(r.Context())},
		Search:   r.URL.Query().Get("q"),
	}

	categories, err := s.Backend.Categories(r.Context())
	if err != nil {
		slog.Error("failed to load categories", "error", err)
		data.Error = backendMessage(err)
		return data
	}

	if data.Search != "" {
		needle := strings.ToLower(data.Search)
		filtered := categories[:0]
		for _, c := range categories {
			if strings.Contains(strings.ToLower(c.CategoryName), needle) {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}

	data.Categories = categories
	return data
}

// CategoryCreateSubmit handles POST /admin/categories. The duplicate-name
// guard is a client-side convenience only; the backend's 201 remains the sole
// success signal.
func (s *Server) CategoryCreateSubmit(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("categoryName"))

	if err := validate.Struct(categoryForm{CategoryName: name}); err != nil {
		data := s.categoriesData(r)
		data.Error = "Category name is required."
		s.Templates.Render(w, "categories.html", data)
		return
	}

	// Reject duplicates against the loaded list without calling the backend.
	categories, err := s.Backend.Categories(r.Context())
	if err != nil {
		slog.Error("failed to load categories for duplicate check", "error", err)
	}
	for _, c := range categories {
		if strings.EqualFold(c.CategoryName, name) {
			data := s.categoriesData(r)
			data.Name = name
			data.Error = "Category already exists!"
			s.Templates.Render(w, "categories.html", data)
			return
		}
	}

	if err := s.Backend.AddCategory(r.Context(), name); err != nil {
		slog.Error("failed to add category", "category", name, "error", err)
		data := s.categoriesData(r)
		data.Name = name
		data.Error = backendMessage(err)
		s.Templates.Render(w, "categories.html", data)
		return
	}

	slog.Info("category added", "user", GetUser(r.Context()), "category", name)
	http.Redirect(w, r, "/admin/categories?ok="+url.QueryEscape("Category added successfully"), http.StatusSeeOther)
}
