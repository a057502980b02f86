package flowgui

// SetFocus gives keyboard focus to widget id. The previously focused
// widget loses its focused flag first, so at most one widget is focused.
func (e *Engine) SetFocus(id ID) {
	if e.focus == id {
		return
	}
	if prev, ok := e.store.get(e.focus); ok {
		prev.Flags.Set(FlagFocused, false)
	}
	e.focus = 0
	if w, ok := e.store.get(id); ok {
		w.Flags.Set(FlagFocused, true)
		e.focus = id
	}
	e.logger.Debug("focus", "id", e.focus)
	e.Repaint()
}

// ClearFocus removes keyboard focus.
func (e *Engine) ClearFocus() {
	if e.focus == 0 {
		return
	}
	if w, ok := e.store.get(e.focus); ok {
		w.Flags.Set(FlagFocused, false)
	}
	e.focus = 0
	e.Repaint()
}

// Focus returns the focused widget, or 0.
func (e *Engine) Focus() ID { return e.focus }

// FocusNext moves focus to the next focusable widget of the last completed
// pass in placement order, wrapping around. reverse walks backwards. It
// reports whether focus moved.
func (e *Engine) FocusNext(reverse bool) bool {
	var ring []*Widget
	current := -1
	for _, w := range e.hitList {
		if !w.WantsFocus() || w.Disabled() {
			continue
		}
		if w.ID == e.focus {
			current = len(ring)
		}
		ring = append(ring, w)
	}
	if len(ring) == 0 {
		return false
	}

	next := 0
	switch {
	case current < 0 && reverse:
		next = len(ring) - 1
	case current < 0:
		next = 0
	case reverse:
		next = (current - 1 + len(ring)) % len(ring)
	default:
		next = (current + 1) % len(ring)
	}
	if ring[next].ID == e.focus {
		return false
	}
	e.SetFocus(ring[next].ID)
	e.EnsureVisible(ring[next].ID)
	return true
}

// paintFocusRing outlines the focused widget.
func paintFocusRing(w *Widget, dc DrawingContext) {
	if !w.Focused() {
		return
	}
	r := w.PaintRect()
	dc.DrawThemedRect(StyleFocus, Rect{X: r.X - SpaceXS, Y: r.Y - SpaceXS, W: r.W + 2*SpaceXS, H: r.H + 2*SpaceXS})
}
