package flowgui

import "fmt"

type scrollDrag uint8

const (
	dragNone scrollDrag = iota
	dragHBar
	dragVBar
	dragPan
	dragResize
)

func (d scrollDrag) String() string {
	switch d {
	case dragNone:
		return "none"
	case dragHBar:
		return "hbar"
	case dragVBar:
		return "vbar"
	case dragPan:
		return "pan"
	case dragResize:
		return "resize"
	default:
		return fmt.Sprintf("scrollDrag(%d)", uint8(d))
	}
}

// ViewportState is the scroll geometry of a viewport widget.
type ViewportState struct {
	// ScrollPos is kept within [0, ScrollableSize-ViewportSize].
	ScrollPos Vec2
	// ScrollableSize is the extent of everything placed inside, measured
	// from the content origin.
	ScrollableSize Vec2
	// ViewportSize is the visible content area after bar reservation.
	ViewportSize Vec2

	// ItemSize is the grid cell of item-grid viewports, zero otherwise.
	ItemSize Vec2
	Border   float32

	// Resizable viewports always reserve bar space; the corner where the
	// bars meet is a resize grip.
	Resizable bool
	// ResizedViewport is the (columns, rows) size set by the user, zero
	// until the first resize.
	ResizedViewport Vec2

	HoverH, HoverV bool

	drag            scrollDrag
	dragStartPos    Vec2
	dragStartScroll Vec2
	dragStartSize   Vec2
}

// MaxScroll returns the largest valid scroll position.
func (vs *ViewportState) MaxScroll() Vec2 {
	return Vec2{
		X: maxf(0, vs.ScrollableSize.X-vs.ViewportSize.X),
		Y: maxf(0, vs.ScrollableSize.Y-vs.ViewportSize.Y),
	}
}

func (vs *ViewportState) canScroll() bool {
	m := vs.MaxScroll()
	return m.X > 0 || m.Y > 0
}

// clampScroll keeps the scroll position in range and reports whether it
// had to move.
func (e *Engine) clampScroll(vs *ViewportState) bool {
	m := vs.MaxScroll()
	p := Vec2{X: clampf(vs.ScrollPos.X, 0, m.X), Y: clampf(vs.ScrollPos.Y, 0, m.Y)}
	changed := p != vs.ScrollPos
	vs.ScrollPos = p
	return changed
}

// ViewportOption configures BeginViewport.
type ViewportOption func(*viewportConfig)

type viewportConfig struct {
	itemSize  Vec2
	resizable bool
	onResize  func(w *Widget, cells Vec2)
	border    float32
}

// WithItemSize makes the viewport an item grid with the given cell size.
// Item grids flow their content on rows, quantize resizing to whole cells
// and highlight the drop slot under the pointer during a drag.
func WithItemSize(size Vec2) ViewportOption {
	return func(c *viewportConfig) { c.itemSize = size }
}

// WithResizable adds a resize grip. onResize runs when the user releases
// it, with the new (columns, rows) size.
func WithResizable(onResize func(w *Widget, cells Vec2)) ViewportOption {
	return func(c *viewportConfig) {
		c.resizable = true
		c.onResize = onResize
	}
}

// WithBorder overrides Style.Border for this viewport.
func WithBorder(width float32) ViewportOption {
	return func(c *viewportConfig) { c.border = width }
}

// BeginViewport places a scrollable region of the given outer size and
// opens a layout scope for its content. Content flows from the viewport
// origin minus the scroll position. Close it with EndViewport.
func (e *Engine) BeginViewport(key string, size Vec2, opts ...ViewportOption) *Widget {
	cfg := viewportConfig{border: e.style.Border}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := e.style.ScrollbarSize
	id := e.ID(key)

	outer := size
	if prev, ok := e.store.get(id); ok && prev.Scroll != nil && cfg.resizable {
		if cells := prev.Scroll.ResizedViewport; !cells.IsZero() {
			item := cfg.itemSize
			if item.X <= 0 || item.Y <= 0 {
				item = Vec2{X: 1, Y: 1}
			}
			outer = cells.MulVec(item).Add(Vec2{X: t + 2*cfg.border, Y: t + 2*cfg.border})
		}
	}

	var w *Widget
	e.advanceCursor(outer, func(r Rect) {
		w = e.UpdateWidget(id, WithBounds(r))
	})
	if w.Scroll == nil {
		w.Scroll = &ViewportState{}
	}
	vs := w.Scroll
	vs.ItemSize = cfg.itemSize
	vs.Border = cfg.border
	vs.Resizable = cfg.resizable
	if cfg.onResize != nil {
		w.OnResize = cfg.onResize
	}

	e.layout.list.Callback(func(dc DrawingContext) {
		r := w.PaintRect()
		dc.DrawThemedRect(StyleViewport, r)
		if vs.Border > 0 {
			dc.DrawThemedRect(StyleViewportBorder, r)
		}
	})

	g := e.geometry(w)
	l := e.layout.child(kindViewport)
	l.viewport = id
	l.frame = Rect{X: g.visible.X - vs.ScrollPos.X, Y: g.visible.Y - vs.ScrollPos.Y, W: g.visible.W, H: g.visible.H}
	l.cursor = l.frame.Pos()
	l.clip = e.layout.clip.Intersect(g.visible)
	l.align = nil
	if !vs.ItemSize.IsZero() {
		l.sameLine = true
		l.breakLines = true
	}
	e.pushLayout(l)
	e.viewports = append(e.viewports, w)
	return w
}

// EndViewport closes the viewport opened last. It measures the content,
// resolves the scrollbars, re-clamps the scroll position and queues the
// clipped content followed by the bars. A change of bars or scroll
// position requests another build pass.
func (e *Engine) EndViewport() {
	child := e.popLayout(kindViewport)
	w := e.viewports[len(e.viewports)-1]
	e.viewports = e.viewports[:len(e.viewports)-1]
	vs := w.Scroll

	var content Vec2
	if child.hasBounds {
		content = Vec2{
			X: maxf(0, child.bounds.Right()-child.frame.X),
			Y: maxf(0, child.bounds.Bottom()-child.frame.Y),
		}
	}

	inner := w.Bounds.Inset(vs.Border)
	t := e.style.ScrollbarSize
	var h, v bool
	var size Vec2
	if vs.Resizable {
		size = Vec2{X: maxf(0, inner.W-t), Y: maxf(0, inner.H-t)}
		h = content.X > size.X
		v = content.Y > size.Y
	} else {
		h, v, size = resolveScrollbars(content, inner.Size(), t)
	}

	changed := h != w.HasHScrollbar() || v != w.HasVScrollbar() || size != vs.ViewportSize
	w.Flags.Set(FlagHScrollbar, h)
	w.Flags.Set(FlagVScrollbar, v)
	vs.ScrollableSize = content
	vs.ViewportSize = size
	if e.clampScroll(vs) {
		changed = true
	}
	if changed {
		e.logger.Debug("viewport geometry changed", "id", w.ID,
			"content", content, "viewport", size, "hbar", h, "vbar", v)
		e.Repaint()
	}

	g := e.geometry(w)
	parent := e.layout.list
	parent.Save()
	parent.Clip(g.visible)
	e.splice(child)
	parent.Restore()

	parent.Callback(func(dc DrawingContext) { e.paintScrollbars(w, dc) })

	if !vs.ItemSize.IsZero() {
		id := w.ID
		parent.Callback(func(dc DrawingContext) {
			if slot, ok := e.DropSlot(); ok && slot.Viewport == id {
				dc.DrawThemedRect(StyleDropSlot, e.slotRect(w, slot.Cell))
			}
		})
	}
	e.current = w
}

// slotRect returns the surface rectangle of grid cell (col, row).
func (e *Engine) slotRect(w *Widget, cell Vec2) Rect {
	vs := w.Scroll
	g := e.geometry(w)
	origin := g.visible.Pos().Sub(vs.ScrollPos)
	return RectAt(origin.Add(Vec2{X: floorf(cell.X), Y: floorf(cell.Y)}.MulVec(vs.ItemSize)), vs.ItemSize)
}

// ScrollTo sets the scroll position of a viewport, clamped to its range.
func (e *Engine) ScrollTo(id ID, pos Vec2) {
	w, ok := e.store.get(id)
	if !ok || w.Scroll == nil {
		return
	}
	old := w.Scroll.ScrollPos
	w.Scroll.ScrollPos = pos
	e.clampScroll(w.Scroll)
	if w.Scroll.ScrollPos != old {
		e.Repaint()
	}
}

// ScrollBy moves the scroll position of a viewport by delta. It reports
// whether the position changed.
func (e *Engine) ScrollBy(id ID, delta Vec2) bool {
	w, ok := e.store.get(id)
	if !ok || w.Scroll == nil {
		return false
	}
	old := w.Scroll.ScrollPos
	e.ScrollTo(id, old.Add(delta))
	return w.Scroll.ScrollPos != old
}

// EnsureVisible scrolls the viewport that contains widget id just enough
// to show it. It reports whether the position changed.
func (e *Engine) EnsureVisible(id ID) bool {
	w, ok := e.store.get(id)
	if !ok || w.Parent == 0 {
		return false
	}
	p, ok := e.store.get(w.Parent)
	if !ok || p.Scroll == nil {
		return false
	}
	vis := e.geometry(p).visible
	var d Vec2
	switch {
	case w.Bounds.X < vis.X:
		d.X = w.Bounds.X - vis.X
	case w.Bounds.Right() > vis.Right():
		d.X = minf(w.Bounds.Right()-vis.Right(), w.Bounds.X-vis.X)
	}
	switch {
	case w.Bounds.Y < vis.Y:
		d.Y = w.Bounds.Y - vis.Y
	case w.Bounds.Bottom() > vis.Bottom():
		d.Y = minf(w.Bounds.Bottom()-vis.Bottom(), w.Bounds.Y-vis.Y)
	}
	if d.IsZero() {
		return false
	}
	return e.ScrollBy(p.ID, d)
}
