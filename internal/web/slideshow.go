package web

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rajservice12693/alankar/internal/carousel"
)

// Autoplay cadences. Card rotation is brisk since it only runs while the
// pointer hovers the card; the banner rotates continuously at a slower pace.
const (
	cardInterval   = 1500 * time.Millisecond
	bannerInterval = 5 * time.Second
)

// streamRegistry tracks the autoplayers behind live slideshow streams so
// manual navigation can reach a running player without reconnecting. Entries
// live exactly as long as their stream's connection.
type streamRegistry struct {
	mu      sync.Mutex
	nextID  uint64
	players map[string]*carousel.Autoplayer
}

func newStreamRegistry() *streamRegistry {
	return &streamRegistry{players: make(map[string]*carousel.Autoplayer)}
}

func (sr *streamRegistry) add(p *carousel.Autoplayer) string {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.nextID++
	id := strconv.FormatUint(sr.nextID, 10)
	sr.players[id] = p
	return id
}

func (sr *streamRegistry) remove(id string) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	delete(sr.players, id)
}

func (sr *streamRegistry) get(id string) *carousel.Autoplayer {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.players[id]
}

// CardSlideshow handles GET /items/{id}/slideshow, a server-sent event stream
// of image indexes. The browser opens the stream on hover-in and closes it on
// hover-out, so the autoplay timer lives exactly as long as the hover: closing
// the stream stops the machine with no partial-tick resume.
func (s *Server) CardSlideshow(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item := s.Catalog.Find(id)
	if item == nil {
		http.NotFound(w, r)
		return
	}
	if len(item.Images) < 2 {
		// Nothing to rotate.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	from, _ := strconv.Atoi(r.URL.Query().Get("from"))
	s.streamSlideshow(w, r, len(item.Images), from, cardInterval)
}

// BannerSlideshow handles GET /slideshow?count=K&from=N for the full-page
// banner carousel. The stream runs for the life of the page, regardless of
// pointer state.
func (s *Server) BannerSlideshow(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count < 1 {
		http.Error(w, "invalid count", http.StatusBadRequest)
		return
	}
	if count < 2 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	from, _ := strconv.Atoi(r.URL.Query().Get("from"))
	s.streamSlideshow(w, r, count, from, bannerInterval)
}

// SlideshowSelect handles POST /slideshow/{id}/select: manual navigation on a
// live stream. It sets the index on the running player directly, so arrow and
// indicator clicks never reset or restart the autoplay cadence.
func (s *Server) SlideshowSelect(w http.ResponseWriter, r *http.Request) {
	player := s.Streams.get(r.PathValue("id"))
	if player == nil {
		http.NotFound(w, r)
		return
	}

	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}

	player.Select(index)
	w.WriteHeader(http.StatusNoContent)
}

// streamSlideshow runs an autoplayer for the lifetime of the connection and
// emits each advanced index as an SSE data line. The first event announces
// the stream id, which SlideshowSelect accepts for manual navigation.
func (s *Server) streamSlideshow(w http.ResponseWriter, r *http.Request, length, from int, interval time.Duration) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	advances := make(chan int, 1)
	player := carousel.NewAutoplayer(length, interval, func(index int) {
		select {
		case advances <- index:
		default:
			// A slow client skips frames rather than blocking the timer.
		}
	})
	player.Select(from)

	id := s.Streams.add(player)
	defer s.Streams.remove(id)

	if _, err := fmt.Fprintf(w, "event: stream\ndata: %s\n\n", id); err != nil {
		return
	}
	flusher.Flush()

	player.Start()
	defer player.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case index := <-advances:
			if _, err := fmt.Fprintf(w, "data: %d\n\n", index); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
