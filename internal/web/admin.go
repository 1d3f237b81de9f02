package web

import (
	"log/slog"
	"net/http"

	"github.com/rajservice12693/alankar/internal/model"
)

// Dashboard handles GET /admin.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := &struct {
		PageData
		Counts *model.DashboardCount
	}{
		PageData: PageData{Title: "Dashboard", User: GetUser(r.Context())},
	}

	counts, err := s.Backend.DashboardCount(r.Context())
	if err != nil {
		slog.Error("failed to load dashboard counts", "error", err)
		data.Error = backendMessage(err)
	}
	data.Counts = counts

	s.Templates.Render(w, "dashboard.html", data)
}
