package web

import (
	"database/sql"
	"net/http"

	"github.com/rajservice12693/alankar/internal/backend"
	"github.com/rajservice12693/alankar/internal/catalog"
	webembed "github.com/rajservice12693/alankar/web"
)

// NewRouter creates the page router with all routes registered.
func NewRouter(client *backend.Client, cacheDB *sql.DB, secret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Backend:   client,
		Catalog:   catalog.NewStore(),
		Cache:     cacheDB,
		Templates: templates,
		Secret:    secret,
		Streams:   newStreamRegistry(),
	}

	mux := http.NewServeMux()
	auth := RequireSession(secret)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public storefront.
	mux.HandleFunc("GET /{$}", s.HomePage)
	mux.HandleFunc("GET /thumb", s.ThumbProxy)
	mux.HandleFunc("GET /items/{id}/slideshow", s.CardSlideshow)
	mux.HandleFunc("GET /slideshow", s.BannerSlideshow)
	mux.HandleFunc("POST /slideshow/{id}/select", s.SlideshowSelect)
	mux.HandleFunc("POST /viewer", s.ViewerStep)

	// Auth.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Admin console.
	mux.Handle("GET /admin", auth(http.HandlerFunc(s.Dashboard)))
	mux.Handle("GET /admin/categories", auth(http.HandlerFunc(s.CategoriesPage)))
	mux.Handle("POST /admin/categories", auth(http.HandlerFunc(s.CategoryCreateSubmit)))
	mux.Handle("GET /admin/materials", auth(http.HandlerFunc(s.MaterialsPage)))
	mux.Handle("POST /admin/materials", auth(http.HandlerFunc(s.MaterialCreateSubmit)))
	mux.Handle("GET /admin/items", auth(http.HandlerFunc(s.ItemsPage)))
	mux.Handle("POST /admin/items", auth(http.HandlerFunc(s.ItemCreateSubmit)))
	mux.Handle("POST /admin/items/{id}/delete", auth(http.HandlerFunc(s.ItemDeleteSubmit)))

	return mux, nil
}
