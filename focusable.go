package flowgui

// NavDirection represents a navigation direction for keyboard focus movement.
type NavDirection uint8

const (
	NavUp NavDirection = iota
	NavDown
	NavLeft
	NavRight
)

// String returns a human-readable name for the navigation direction.
func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "Up"
	case NavDown:
		return "Down"
	case NavLeft:
		return "Left"
	case NavRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsVertical returns true for Up/Down directions.
func (d NavDirection) IsVertical() bool {
	return d == NavUp || d == NavDown
}

func navDirection(k Key) (NavDirection, bool) {
	switch k {
	case KeyUp:
		return NavUp, true
	case KeyDown:
		return NavDown, true
	case KeyLeft:
		return NavLeft, true
	case KeyRight:
		return NavRight, true
	}
	return 0, false
}

// FocusNavigate moves focus to the nearest focusable widget of the last
// completed pass whose center lies in direction dir from the focused
// widget's center. Distance across the direction counts double. Without
// a focused widget it focuses the first one. It reports whether focus
// moved.
func (e *Engine) FocusNavigate(dir NavDirection) bool {
	current, ok := e.store.get(e.focus)
	if !ok {
		return e.FocusNext(false)
	}
	from := rectCenter(current.Bounds)

	var best *Widget
	bestDist := float32(0)
	for _, w := range e.hitList {
		if w == current || !w.WantsFocus() || w.Disabled() {
			continue
		}
		d := rectCenter(w.Bounds).Sub(from)
		along, across := d.X, d.Y
		if dir.IsVertical() {
			along, across = d.Y, d.X
		}
		if dir == NavUp || dir == NavLeft {
			along = -along
		}
		if along <= 0 {
			continue
		}
		dist := along + 2*absf(across)
		if best == nil || dist < bestDist {
			best, bestDist = w, dist
		}
	}
	if best == nil {
		return false
	}
	e.SetFocus(best.ID)
	e.EnsureVisible(best.ID)
	return true
}

func rectCenter(r Rect) Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
