package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/rajservice12693/alankar/internal/cache"
	"github.com/rajservice12693/alankar/internal/imaging"
)

// ThumbProxy handles GET /thumb?src=: serve a card-sized rendition of an
// upstream catalog image, from the local cache when possible. Only images
// hosted by the configured backend are proxied. Failures are a 404, never
// fatal to the page.
func (s *Server) ThumbProxy(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("src")
	if src == "" || !strings.HasPrefix(src, s.Backend.BaseURL) {
		http.Error(w, "invalid image source", http.StatusBadRequest)
		return
	}

	data, mime, err := cache.Get(r.Context(), s.Cache, src)
	if err != nil {
		slog.Error("thumbnail cache read failed", "src", src, "error", err)
	}

	if data == nil {
		data, mime = s.fetchThumb(w, r, src)
		if data == nil {
			return
		}
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write thumbnail response", "error", err)
	}
}

// fetchThumb pulls the upstream image, processes it and stores the result.
// On any failure it writes a 404 and returns nil.
func (s *Server) fetchThumb(w http.ResponseWriter, r *http.Request, src string) ([]byte, string) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, src, nil)
	if err != nil {
		http.NotFound(w, r)
		return nil, ""
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Warn("upstream image fetch failed", "src", src, "error", err)
		http.NotFound(w, r)
		return nil, ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		http.NotFound(w, r)
		return nil, ""
	}

	thumb, err := imaging.Thumbnail(resp.Body)
	if err != nil {
		slog.Warn("thumbnail processing failed", "src", src, "error", err)
		http.NotFound(w, r)
		return nil, ""
	}

	if err := cache.Put(r.Context(), s.Cache, src, thumb.Data, thumb.MIME); err != nil {
		slog.Error("thumbnail cache write failed", "src", src, "error", err)
	}

	return thumb.Data, thumb.MIME
}
