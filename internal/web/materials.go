package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/rajservice12693/alankar/internal/model"
)

type materialsData struct {
	PageData
	Categories []model.Category
	Materials  []model.Material
	// Selected is the category chosen in the entry form; changing it always
	// clears the material selection.
	Selected string
	Name     string
}

// MaterialsPage handles GET /admin/materials.
func (s *Server) MaterialsPage(w http.ResponseWriter, r *http.Request) {
	data := s.materialsData(r)
	data.Success = r.URL.Query().Get("ok")
	s.Templates.Render(w, "materials.html", data)
}

func (s *Server) materialsData(r *http.Request) *materialsData {
	data := &materialsData{
		PageData: PageData{Title: "Materials", User: GetUser(r.Context())},
		Selected: r.URL.Query().Get("category"),
	}

	categories, err := s.Backend.Categories(r.Context())
	if err != nil {
		slog.Error("failed to load categories", "error", err)
		data.Error = backendMessage(err)
		return data
	}
	data.Categories = categories

	materials, err := s.Backend.Materials(r.Context())
	if err != nil {
		slog.Error("failed to load materials", "error", err)
		data.Error = backendMessage(err)
		return data
	}
	data.Materials = materials

	return data
}

// MaterialCreateSubmit handles POST /admin/materials.
func (s *Server) MaterialCreateSubmit(w http.ResponseWriter, r *http.Request) {
	form := materialForm{
		MaterialName: strings.TrimSpace(r.FormValue("materialName")),
		CategoryID:   r.FormValue("categoryId"),
	}

	if err := validate.Struct(form); err != nil {
		data := s.materialsData(r)
		data.Selected = form.CategoryID
		data.Name = form.MaterialName
		data.Error = requiredFieldsMessage
		s.Templates.Render(w, "materials.html", data)
		return
	}

	if err := s.Backend.AddMaterial(r.Context(), form.MaterialName, form.CategoryID); err != nil {
		slog.Error("failed to add material", "material", form.MaterialName, "error", err)
		data := s.materialsData(r)
		data.Selected = form.CategoryID
		data.Name = form.MaterialName
		data.Error = backendMessage(err)
		s.Templates.Render(w, "materials.html", data)
		return
	}

	slog.Info("material added", "user", GetUser(r.Context()), "material", form.MaterialName)
	http.Redirect(w, r, "/admin/materials?ok="+url.QueryEscape("Material saved successfully"), http.StatusSeeOther)
}
