package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rajservice12693/alankar/internal/backend"
	"github.com/rajservice12693/alankar/internal/model"
)

// maxUploadBytes bounds an item upload (payload plus images).
const maxUploadBytes = 32 << 20

type itemsData struct {
	PageData
	Items      []model.Item
	Categories []model.Category
	// Materials holds only the selected category's embedded materials; the
	// dropdown cascades and a category change clears the material selection.
	Materials []model.Material
	Selected  string
	Form      backend.ItemPayload
}

// ItemsPage handles GET /admin/items. Picking a category in the entry form
// reloads the page with ?category= so the material dropdown can cascade.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	data := s.itemsData(r, r.URL.Query().Get("category"))
	data.Success = r.URL.Query().Get("ok")
	s.Templates.Render(w, "items.html", data)
}

func (s *Server) itemsData(r *http.Request, selectedCategory string) *itemsData {
	data := &itemsData{
		PageData: PageData{Title: "Jewellery Items", User: GetUser(r.Context())},
		Selected: selectedCategory,
	}

	items, err := s.Backend.Items(r.Context())
	if err != nil {
		slog.Error("failed to load items", "error", err)
		data.Error = backendMessage(err)
	}
	data.Items = items

	categories, err := s.Backend.Categories(r.Context())
	if err != nil {
		slog.Error("failed to load categories", "error", err)
		if data.Error == "" {
			data.Error = backendMessage(err)
		}
	}
	data.Categories = categories
	data.Materials = model.MaterialsFor(categories, selectedCategory)

	return data
}

// ItemCreateSubmit handles POST /admin/items: validate locally, then forward
// the multipart upload (JSON payload + image files) to the backend.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "upload too large", http.StatusBadRequest)
		return
	}

	weight, _ := strconv.ParseFloat(r.FormValue("weight"), 64)
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	form := itemForm{
		ItemName:    strings.TrimSpace(r.FormValue("itemName")),
		CategoryID:  r.FormValue("categoryId"),
		MaterialID:  r.FormValue("materialId"),
		Purity:      strings.TrimSpace(r.FormValue("purity")),
		Weight:      weight,
		Price:       price,
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	files := r.MultipartForm.File["images"]
	if err := validate.Struct(form); err != nil || len(files) == 0 {
		data := s.itemsData(r, form.CategoryID)
		data.Form = payloadFromForm(form)
		data.Error = requiredFieldsMessage
		s.Templates.Render(w, "items.html", data)
		return
	}

	var images []backend.ImageFile
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			http.Error(w, "reading upload", http.StatusBadRequest)
			return
		}
		defer f.Close()
		images = append(images, backend.ImageFile{Name: fh.Filename, Reader: f})
	}

	if err := s.Backend.SaveItem(r.Context(), payloadFromForm(form), images); err != nil {
		slog.Error("failed to save item", "item", form.ItemName, "error", err)
		data := s.itemsData(r, form.CategoryID)
		data.Form = payloadFromForm(form)
		data.Error = backendMessage(err)
		s.Templates.Render(w, "items.html", data)
		return
	}

	slog.Info("item saved", "user", GetUser(r.Context()), "item", form.ItemName)
	http.Redirect(w, r, "/admin/items?ok="+url.QueryEscape("Item saved successfully"), http.StatusSeeOther)
}

func payloadFromForm(form itemForm) backend.ItemPayload {
	return backend.ItemPayload{
		ItemName:    form.ItemName,
		CategoryID:  form.CategoryID,
		MaterialID:  form.MaterialID,
		Purity:      form.Purity,
		Weight:      form.Weight,
		Price:       form.Price,
		Description: form.Description,
	}
}

// ItemDeleteSubmit handles POST /admin/items/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.Backend.DeleteItem(r.Context(), id); err != nil {
		slog.Error("failed to delete item", "item", id, "error", err)
		data := s.itemsData(r, "")
		data.Error = backendMessage(err)
		s.Templates.Render(w, "items.html", data)
		return
	}

	slog.Info("item deleted", "user", GetUser(r.Context()), "item", id)
	http.Redirect(w, r, "/admin/items?ok="+url.QueryEscape("Item deleted successfully"), http.StatusSeeOther)
}
