package flowgui

// resolveScrollbars decides which scrollbars a viewport needs. Reserving
// one bar shrinks the space of the other axis, so the decision is a fixed
// point reached in at most two steps. When the bars would not fit in the
// space they leave, both are retracted and the full area is used.
func resolveScrollbars(content, avail Vec2, thickness float32) (h, v bool, size Vec2) {
	h = content.X > avail.X
	v = content.Y > avail.Y
	if h && !v {
		v = content.Y > avail.Y-thickness
	} else if v && !h {
		h = content.X > avail.X-thickness
	}

	size = avail
	if h {
		size.Y -= thickness
	}
	if v {
		size.X -= thickness
	}
	if (h || v) && (thickness >= size.X || thickness >= size.Y) {
		return false, false, avail
	}
	return h, v, size
}

// thumbSpan returns the start and length of a scrollbar thumb along a
// track.
func thumbSpan(trackStart, trackLen, content, view, scroll, minThumb float32) (start, length float32) {
	if content <= view || trackLen <= 0 {
		return trackStart, trackLen
	}
	length = clampf(trackLen*view/content, minf(minThumb, trackLen), trackLen)
	travel := trackLen - length
	start = trackStart
	if maxScroll := content - view; maxScroll > 0 {
		start += scroll / maxScroll * travel
	}
	return start, length
}

// thumbScale converts thumb travel in pixels to scroll distance.
func thumbScale(trackLen, content, view, minThumb float32) float32 {
	_, length := thumbSpan(0, trackLen, content, view, 0, minThumb)
	travel := trackLen - length
	if travel <= 0 {
		return 0
	}
	return (content - view) / travel
}

// viewportGeometry is the layout of a viewport widget's parts, derived from
// its bounds and the bar flags of the last completed pass.
type viewportGeometry struct {
	inner   Rect // bounds minus border
	visible Rect // inner minus reserved bar space
	hStrip  Rect // horizontal bar region, empty if none
	vStrip  Rect // vertical bar region, empty if none
	corner  Rect
}

func (e *Engine) geometry(w *Widget) viewportGeometry {
	vs := w.Scroll
	t := e.style.ScrollbarSize
	var g viewportGeometry
	g.inner = w.Bounds.Inset(vs.Border)
	g.visible = g.inner

	reserveH := w.HasHScrollbar() || vs.Resizable
	reserveV := w.HasVScrollbar() || vs.Resizable
	if reserveV {
		g.visible.W = maxf(0, g.inner.W-t)
		g.vStrip = Rect{X: g.inner.Right() - t, Y: g.inner.Y, W: t, H: g.inner.H}
	}
	if reserveH {
		g.visible.H = maxf(0, g.inner.H-t)
		g.hStrip = Rect{X: g.inner.X, Y: g.inner.Bottom() - t, W: g.inner.W, H: t}
	}
	if reserveH && reserveV {
		g.corner = g.hStrip.Intersect(g.vStrip)
	}
	return g
}

// hThumb and vThumb return the thumb rectangles in surface coordinates.
func (e *Engine) hThumb(w *Widget, g viewportGeometry) Rect {
	vs := w.Scroll
	start, length := thumbSpan(g.hStrip.X, g.visible.W, vs.ScrollableSize.X, vs.ViewportSize.X, vs.ScrollPos.X, e.style.MinThumbSize)
	return Rect{X: start, Y: g.hStrip.Y, W: length, H: g.hStrip.H}
}

func (e *Engine) vThumb(w *Widget, g viewportGeometry) Rect {
	vs := w.Scroll
	start, length := thumbSpan(g.vStrip.Y, g.visible.H, vs.ScrollableSize.Y, vs.ViewportSize.Y, vs.ScrollPos.Y, e.style.MinThumbSize)
	return Rect{X: g.vStrip.X, Y: start, W: g.vStrip.W, H: length}
}

// barHit reports whether pos is on a bar or the resize grip of w.
func (e *Engine) barHit(w *Widget, pos Vec2) bool {
	if w.Scroll == nil {
		return false
	}
	g := e.geometry(w)
	return g.hStrip.Contains(pos) || g.vStrip.Contains(pos)
}

// viewportHover updates the bar hover flags of w and reports whether they
// changed.
func (e *Engine) viewportHover(w *Widget, pos Vec2) bool {
	vs := w.Scroll
	g := e.geometry(w)
	hh := g.hStrip.Contains(pos)
	hv := g.vStrip.Contains(pos)
	changed := hh != vs.HoverH || hv != vs.HoverV
	vs.HoverH, vs.HoverV = hh, hv
	return changed
}

// viewportPointerDown starts a bar drag, a pan or a resize. It returns
// true when the viewport takes the pointer.
func (e *Engine) viewportPointerDown(w *Widget, ev PointerEvent) bool {
	vs := w.Scroll
	g := e.geometry(w)

	switch ev.Button {
	case MouseButtonLeft:
		e.viewportHover(w, ev.Pos)
		switch {
		case vs.Resizable && vs.HoverH && vs.HoverV:
			vs.drag = dragResize
			vs.dragStartSize = g.visible.Size()
		case vs.HoverH && w.HasHScrollbar():
			thumb := e.hThumb(w, g)
			if !thumb.Contains(ev.Pos) {
				// Jump so the thumb centers under the pointer, then drag it.
				scale := thumbScale(g.visible.W, vs.ScrollableSize.X, vs.ViewportSize.X, e.style.MinThumbSize)
				vs.ScrollPos.X = (ev.Pos.X - g.hStrip.X - thumb.W/2) * scale
				e.clampScroll(vs)
			}
			vs.drag = dragHBar
		case vs.HoverV && w.HasVScrollbar():
			thumb := e.vThumb(w, g)
			if !thumb.Contains(ev.Pos) {
				scale := thumbScale(g.visible.H, vs.ScrollableSize.Y, vs.ViewportSize.Y, e.style.MinThumbSize)
				vs.ScrollPos.Y = (ev.Pos.Y - g.vStrip.Y - thumb.H/2) * scale
				e.clampScroll(vs)
			}
			vs.drag = dragVBar
		default:
			return false
		}
	case MouseButtonMiddle:
		if !g.visible.Contains(ev.Pos) || !vs.canScroll() {
			return false
		}
		vs.drag = dragPan
	default:
		return false
	}

	vs.dragStartPos = ev.Pos
	vs.dragStartScroll = vs.ScrollPos
	e.logger.Debug("viewport drag", "id", w.ID, "mode", vs.drag)
	e.Repaint()
	return true
}

// viewportPointerMove applies an active bar drag, pan or resize.
func (e *Engine) viewportPointerMove(w *Widget, pos Vec2) {
	vs := w.Scroll
	d := pos.Sub(vs.dragStartPos)
	g := e.geometry(w)

	switch vs.drag {
	case dragHBar:
		scale := thumbScale(g.visible.W, vs.ScrollableSize.X, vs.ViewportSize.X, e.style.MinThumbSize)
		vs.ScrollPos.X = vs.dragStartScroll.X + d.X*scale
	case dragVBar:
		scale := thumbScale(g.visible.H, vs.ScrollableSize.Y, vs.ViewportSize.Y, e.style.MinThumbSize)
		vs.ScrollPos.Y = vs.dragStartScroll.Y + d.Y*scale
	case dragPan:
		vs.ScrollPos = vs.dragStartScroll.Sub(d)
	case dragResize:
		item := vs.ItemSize
		if item.X <= 0 {
			item.X = 1
		}
		if item.Y <= 0 {
			item.Y = 1
		}
		size := vs.dragStartSize.Add(d)
		cells := Vec2{
			X: maxf(1, roundf(size.X/item.X)),
			Y: maxf(1, roundf(size.Y/item.Y)),
		}
		if cells != vs.ResizedViewport {
			vs.ResizedViewport = cells
			e.Repaint()
		}
		return
	default:
		return
	}
	e.clampScroll(vs)
	e.Repaint()
}

// viewportPointerUp ends a drag. A finished resize is reported through
// OnResize.
func (e *Engine) viewportPointerUp(w *Widget) {
	vs := w.Scroll
	if vs.drag == dragNone {
		return
	}
	if vs.drag == dragResize && w.OnResize != nil {
		w.OnResize(w, vs.ResizedViewport)
	}
	vs.drag = dragNone
	e.Repaint()
}

// paintScrollbars draws tracks, thumbs and the resize grip of w.
func (e *Engine) paintScrollbars(w *Widget, dc DrawingContext) {
	vs := w.Scroll
	g := e.geometry(w)
	if w.HasHScrollbar() {
		dc.DrawThemedRect(StyleScrollTrack, g.hStrip)
		style := StyleScrollThumb
		if vs.HoverH || vs.drag == dragHBar {
			style = StyleScrollThumbHot
		}
		dc.DrawThemedRect(style, e.hThumb(w, g))
	}
	if w.HasVScrollbar() {
		dc.DrawThemedRect(StyleScrollTrack, g.vStrip)
		style := StyleScrollThumb
		if vs.HoverV || vs.drag == dragVBar {
			style = StyleScrollThumbHot
		}
		dc.DrawThemedRect(style, e.vThumb(w, g))
	}
	if vs.Resizable && !g.corner.Empty() {
		dc.DrawThemedRect(StyleResizeGrip, g.corner)
	}
}
