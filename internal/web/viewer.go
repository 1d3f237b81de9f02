package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rajservice12693/alankar/internal/carousel"
)

// viewerEvent is one interaction with the modal viewer.
type viewerEvent struct {
	Type  string  `json:"type"`
	Key   string  `json:"key,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Index int     `json:"index,omitempty"`
	Count int     `json:"count,omitempty"`
}

// viewerStepRequest carries the current state plus the event to apply. The
// browser holds the serialized state; the server owns the transition rules.
type viewerStepRequest struct {
	State carousel.Viewer `json:"state"`
	Event viewerEvent     `json:"event"`
}

// ViewerStep handles POST /viewer: apply one event to the modal viewer state
// machine and return the next state.
func (s *Server) ViewerStep(w http.ResponseWriter, r *http.Request) {
	var req viewerStepRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	v := req.State
	switch req.Event.Type {
	case "open":
		v.Open(req.Event.Index, req.Event.Count)
	case "close":
		v.Close()
	case "zoom-in":
		v.ZoomIn()
	case "zoom-out":
		v.ZoomOut()
	case "reset":
		v.ResetZoom()
	case "next":
		v.NextImage()
	case "prev":
		v.PrevImage()
	case "set":
		v.SetImage(req.Event.Index)
	case "key":
		v.HandleKey(req.Event.Key)
	case "pointer-down":
		v.PointerDown(req.Event.X, req.Event.Y)
	case "pointer-move":
		v.PointerMove(req.Event.X, req.Event.Y)
	case "pointer-up":
		v.PointerUp()
	default:
		http.Error(w, "unknown event type", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode viewer state", "error", err)
	}
}
