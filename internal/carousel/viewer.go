package carousel

// Zoom bounds for the modal viewer. Each zoom action multiplies or divides by
// ZoomStep; the level is always clamped to [MinZoom, MaxZoom].
const (
	MinZoom  = 1.0
	MaxZoom  = 5.0
	ZoomStep = 1.5
)

// Viewer is the modal image viewer state machine. The zero value is Closed.
// Pan offsets are only meaningful while Zoom > MinZoom; whenever the zoom
// returns to exactly MinZoom the pan is forced back to the origin.
type Viewer struct {
	IsOpen bool    `json:"open"`
	Index  int     `json:"index"`
	Count  int     `json:"count"`
	Zoom   float64 `json:"zoom"`
	PanX   float64 `json:"panX"`
	PanY   float64 `json:"panY"`

	Dragging bool    `json:"dragging"`
	AnchorX  float64 `json:"anchorX"`
	AnchorY  float64 `json:"anchorY"`
	GrabPanX float64 `json:"grabPanX"`
	GrabPanY float64 `json:"grabPanY"`
}

// Open opens the viewer on the image shown at the time of opening.
func (v *Viewer) Open(index, count int) {
	v.IsOpen = true
	v.Count = count
	v.Index = Clamp(index, count)
	v.resetZoom()
}

// Close closes the viewer and resets zoom and pan.
func (v *Viewer) Close() {
	v.IsOpen = false
	v.Dragging = false
	v.resetZoom()
}

// ZoomIn raises the zoom one step, capped at MaxZoom.
func (v *Viewer) ZoomIn() {
	z := v.zoom() * ZoomStep
	if z > MaxZoom {
		z = MaxZoom
	}
	v.Zoom = z
}

// ZoomOut lowers the zoom one step. Dropping to (or below) MinZoom clamps the
// level and forces the pan back to the origin, so a sub-1 zoom or stale pan
// can never be observed.
func (v *Viewer) ZoomOut() {
	z := v.zoom() / ZoomStep
	if z <= MinZoom {
		v.resetZoom()
		return
	}
	v.Zoom = z
}

// ResetZoom restores the default zoom and pan.
func (v *Viewer) ResetZoom() {
	v.resetZoom()
}

func (v *Viewer) resetZoom() {
	v.Zoom = MinZoom
	v.PanX = 0
	v.PanY = 0
}

// zoom normalizes the zero value (a never-zoomed viewer) to MinZoom.
func (v *Viewer) zoom() float64 {
	if v.Zoom < MinZoom {
		return MinZoom
	}
	return v.Zoom
}

// NextImage advances to the next image. Changing the displayed image resets
// zoom and pan.
func (v *Viewer) NextImage() {
	v.Index = Next(v.Index, v.Count)
	v.Dragging = false
	v.resetZoom()
}

// PrevImage goes back one image, resetting zoom and pan.
func (v *Viewer) PrevImage() {
	v.Index = Prev(v.Index, v.Count)
	v.Dragging = false
	v.resetZoom()
}

// SetImage shows a specific image (indicator click), resetting zoom and pan.
func (v *Viewer) SetImage(index int) {
	v.Index = Clamp(index, v.Count)
	v.Dragging = false
	v.resetZoom()
}

// PointerDown begins a pan drag. Dragging only arms while zoomed in.
func (v *Viewer) PointerDown(x, y float64) {
	if v.zoom() <= MinZoom {
		return
	}
	v.Dragging = true
	v.AnchorX = x
	v.AnchorY = y
	v.GrabPanX = v.PanX
	v.GrabPanY = v.PanY
}

// PointerMove updates the pan while dragging. The delta is measured from the
// pointer-down anchor, not from the previous move.
func (v *Viewer) PointerMove(x, y float64) {
	if !v.Dragging {
		return
	}
	v.PanX = v.GrabPanX + (x - v.AnchorX)
	v.PanY = v.GrabPanY + (y - v.AnchorY)
}

// PointerUp ends a pan drag.
func (v *Viewer) PointerUp() {
	v.Dragging = false
}

// HandleKey applies a keyboard binding while the viewer is open. It reports
// whether the key was handled.
func (v *Viewer) HandleKey(key string) bool {
	if !v.IsOpen {
		return false
	}
	switch key {
	case "+", "=":
		v.ZoomIn()
	case "-":
		v.ZoomOut()
	case "0":
		v.ResetZoom()
	case "ArrowLeft":
		v.PrevImage()
	case "ArrowRight":
		v.NextImage()
	case "Escape":
		v.Close()
	default:
		return false
	}
	return true
}
