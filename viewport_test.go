package flowgui

import "testing"

// tileStrip builds a 200x100 viewport holding n 64x64 tiles on one row.
func tileStrip(n int) BuildFunc {
	return func(e *Engine) {
		e.BeginViewport("strip", Vec2{X: 200, Y: 100}, WithBorder(0))
		e.SetMargin(0)
		e.SameLine(true)
		e.BreakLines(false)
		for i := 0; i < n; i++ {
			e.PushIDInt(i)
			r := e.Space(Vec2{X: 64, Y: 64})
			e.UpdateWidget(e.ID("tile"), WithBounds(r))
			e.PopID()
		}
		e.EndViewport()
	}
}

func TestViewportTileStrip(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	mustPaint(t, e)

	w, ok := e.Widget(e.ID("strip"))
	if !ok {
		t.Fatal("viewport record missing")
	}
	vs := w.Scroll
	if vs.ScrollableSize != (Vec2{X: 640, Y: 64}) {
		t.Errorf("ScrollableSize = %v, want (640, 64)", vs.ScrollableSize)
	}
	if !w.HasHScrollbar() {
		t.Error("expected a horizontal scrollbar")
	}
	if w.HasVScrollbar() {
		t.Error("expected no vertical scrollbar")
	}
	if vs.ViewportSize.X != 200 {
		t.Errorf("ViewportSize.X = %v, want 200", vs.ViewportSize.X)
	}

	if !e.ScrollBy(w.ID, Vec2{X: 500}) {
		t.Fatal("ScrollBy should move the viewport")
	}
	if vs.ScrollPos.X != 440 {
		t.Errorf("ScrollPos.X = %v, want 440", vs.ScrollPos.X)
	}
	if e.ScrollBy(w.ID, Vec2{X: 10}) {
		t.Error("ScrollBy at the end should report no movement")
	}
}

func TestViewportFirstFrameNeedsSecondPass(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	mustPaint(t, e)
	if s := e.Stats(); s.Passes != 2 {
		t.Errorf("expected 2 passes on first frame, got %d", s.Passes)
	}
	e.Repaint()
	mustPaint(t, e)
	if s := e.Stats(); s.Passes != 1 {
		t.Errorf("expected 1 pass once bars are settled, got %d", s.Passes)
	}
}

func TestViewportContentClipped(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	dc := mustPaint(t, e)
	if dc.clips == 0 {
		t.Error("viewport content should be clipped")
	}
	if n := dc.count("rect " + string(StyleScrollThumb)); n != 1 {
		t.Errorf("expected one scroll thumb, got %d", n)
	}
}

func TestResolveScrollbars(t *testing.T) {
	const thickness = 12
	contents := []float32{0, 50, 88, 89, 95, 100, 101, 150, 1000}
	avails := []Vec2{{X: 100, Y: 100}, {X: 200, Y: 50}, {X: 10, Y: 10}, {X: 20, Y: 300}, {X: 13, Y: 13}}

	for _, avail := range avails {
		for _, cx := range contents {
			for _, cy := range contents {
				content := Vec2{X: cx, Y: cy}
				h, v, size := resolveScrollbars(content, avail, thickness)

				if h || v {
					if h != (content.X > size.X) || v != (content.Y > size.Y) {
						t.Errorf("content %v avail %v: bars (%v, %v) disagree with final size %v", content, avail, h, v, size)
					}
					if thickness >= size.X || thickness >= size.Y {
						t.Errorf("content %v avail %v: bars kept in a %v viewport", content, avail, size)
					}
				} else if size != avail {
					t.Errorf("content %v avail %v: no bars but size %v", content, avail, size)
				}

				// With the chosen bars reserved, each axis needs a bar exactly
				// when it has one, unless the bars were retracted.
				if !h && !v && (content.X > avail.X || content.Y > avail.Y) {
					continue
				}
				needH := content.X > avail.X-barSpace(v, thickness)
				needV := content.Y > avail.Y-barSpace(h, thickness)
				if needH != h || needV != v {
					t.Errorf("content %v avail %v: bars (%v, %v) are not stable, content needs (%v, %v)", content, avail, h, v, needH, needV)
				}
			}
		}
	}
}

func barSpace(shown bool, thickness float32) float32 {
	if shown {
		return thickness
	}
	return 0
}

func TestResolveScrollbarsRetractsWhenTooSmall(t *testing.T) {
	h, v, size := resolveScrollbars(Vec2{X: 50, Y: 50}, Vec2{X: 10, Y: 10}, 12)
	if h || v {
		t.Errorf("bars (%v, %v) should retract in a viewport thinner than a bar", h, v)
	}
	if size != (Vec2{X: 10, Y: 10}) {
		t.Errorf("size = %v, want the full area", size)
	}
}

func TestScrollClamp(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	mustPaint(t, e)
	id := e.ID("strip")
	w, _ := e.Widget(id)
	vs := w.Scroll

	for _, pos := range []Vec2{{X: -50}, {X: 1e6, Y: 1e6}, {X: 100, Y: -3}, {X: 440, Y: 0}} {
		e.ScrollTo(id, pos)
		max := vs.MaxScroll()
		if vs.ScrollPos.X < 0 || vs.ScrollPos.X > max.X || vs.ScrollPos.Y < 0 || vs.ScrollPos.Y > max.Y {
			t.Errorf("ScrollTo(%v) left position %v outside [0, %v]", pos, vs.ScrollPos, max)
		}
	}
}

func TestScrollReclampedWhenContentShrinks(t *testing.T) {
	n := 10
	e := newTestEngine(func(e *Engine) { tileStrip(n)(e) })
	mustPaint(t, e)
	id := e.ID("strip")
	e.ScrollTo(id, Vec2{X: 440})
	mustPaint(t, e)

	n = 4
	e.Repaint()
	mustPaint(t, e)
	w, _ := e.Widget(id)
	if w.Scroll.ScrollPos.X != 56 {
		t.Errorf("ScrollPos.X = %v, want 256-200 = 56", w.Scroll.ScrollPos.X)
	}
}

func TestWheelScrollsInnermostScrollable(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	mustPaint(t, e)
	w, _ := e.Widget(e.ID("strip"))

	e.OnWheel(Vec2{X: 50, Y: 30}, Vec2{X: -1})
	if got := w.Scroll.ScrollPos.X; got != e.Style().WheelStep {
		t.Errorf("ScrollPos.X = %v after one notch, want %v", got, e.Style().WheelStep)
	}
	if !e.NeedsPaint() {
		t.Error("wheel scroll should request a repaint")
	}

	e.OnWheel(Vec2{X: 500, Y: 500}, Vec2{X: -1})
	if got := w.Scroll.ScrollPos.X; got != e.Style().WheelStep {
		t.Errorf("wheel outside the viewport moved it to %v", got)
	}
}

func TestScrollbarDrag(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	mustPaint(t, e)
	w, _ := e.Widget(e.ID("strip"))
	g := e.geometry(w)
	thumb := e.hThumb(w, g)
	start := Vec2{X: thumb.X + thumb.W/2, Y: thumb.Y + thumb.H/2}

	e.OnPointerMove(start, MouseButtonNone)
	e.OnPointerDown(start, MouseButtonLeft)
	e.OnPointerMove(start.Add(Vec2{X: 1000}), MouseButtonLeft)
	if got := w.Scroll.ScrollPos.X; got != 440 {
		t.Errorf("dragging the thumb to the end gave %v, want 440", got)
	}
	e.OnPointerUp(start.Add(Vec2{X: 1000}))
	if w.Scroll.drag != dragNone {
		t.Errorf("drag mode %v left after release", w.Scroll.drag)
	}
	if w.Checked() {
		t.Error("a viewport must not toggle on release")
	}
}

func TestMiddleButtonPans(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	mustPaint(t, e)
	w, _ := e.Widget(e.ID("strip"))

	e.OnPointerDown(Vec2{X: 150, Y: 40}, MouseButtonMiddle)
	e.OnPointerMove(Vec2{X: 50, Y: 40}, MouseButtonMiddle)
	if got := w.Scroll.ScrollPos.X; got != 100 {
		t.Errorf("pan by 100px gave scroll %v", got)
	}
	e.OnPointerUp(Vec2{X: 50, Y: 40})
}

func TestEnsureVisible(t *testing.T) {
	e := newTestEngine(tileStrip(10))
	mustPaint(t, e)

	e.PushIDInt(7)
	tile := e.ID("tile")
	e.PopID()
	if !e.EnsureVisible(tile) {
		t.Fatal("EnsureVisible should scroll to an off-screen tile")
	}
	mustPaint(t, e)
	w, _ := e.Widget(tile)
	vp, _ := e.Widget(e.ID("strip"))
	vis := e.geometry(vp).visible
	if w.Bounds.X < vis.X || w.Bounds.Right() > vis.Right() {
		t.Errorf("tile %v not inside visible area %v", w.Bounds, vis)
	}
	if e.EnsureVisible(tile) {
		t.Error("EnsureVisible on a visible tile should not scroll")
	}
}

func TestResizableGridSnapsToCells(t *testing.T) {
	var resized Vec2
	build := func(e *Engine) {
		e.BeginViewport("grid", Vec2{X: 200, Y: 200},
			WithBorder(0),
			WithItemSize(Vec2{X: 32, Y: 32}),
			WithResizable(func(w *Widget, cells Vec2) { resized = cells }))
		e.SetMargin(0)
		for i := 0; i < 20; i++ {
			e.Space(Vec2{X: 32, Y: 32})
		}
		e.EndViewport()
	}
	e := newTestEngine(build)
	mustPaint(t, e)
	w, _ := e.Widget(e.ID("grid"))
	g := e.geometry(w)
	if g.corner.Empty() {
		t.Fatal("resizable viewport should reserve a resize corner")
	}

	grip := Vec2{X: g.corner.X + 2, Y: g.corner.Y + 2}
	e.OnPointerMove(grip, MouseButtonNone)
	e.OnPointerDown(grip, MouseButtonLeft)
	e.OnPointerMove(grip.Add(Vec2{X: -60, Y: 10}), MouseButtonLeft)
	e.OnPointerUp(grip.Add(Vec2{X: -60, Y: 10}))

	// visible 188x188 -> 128x198 -> 4x6 cells
	want := Vec2{X: 4, Y: 6}
	if resized != want {
		t.Fatalf("OnResize got %v, want %v", resized, want)
	}
	mustPaint(t, e)
	if got := w.Bounds.Size(); got != (Vec2{X: 4*32 + 12, Y: 6*32 + 12}) {
		t.Errorf("resized viewport size = %v", got)
	}
}

// rowList builds a 200x100 viewport holding six 200x40 rows. The rows are
// as wide as the viewport, so they run under its vertical bar.
func rowList(e *Engine) {
	e.BeginViewport("list", Vec2{X: 200, Y: 100}, WithBorder(0))
	e.SetMargin(0)
	for i := 0; i < 6; i++ {
		e.PushIDInt(i)
		r := e.Space(Vec2{X: 200, Y: 40})
		e.UpdateWidget(e.ID("row"), WithBounds(r))
		e.PopID()
	}
	e.EndViewport()
}

func listRow(t *testing.T, e *Engine, i int) *Widget {
	t.Helper()
	e.PushIDInt(i)
	defer e.PopID()
	w, ok := e.Widget(e.ID("row"))
	if !ok {
		t.Fatalf("row %d missing", i)
	}
	return w
}

func TestScrollbarBeatsContentUnderIt(t *testing.T) {
	e := newTestEngine(rowList)
	mustPaint(t, e)
	vp, _ := e.Widget(e.ID("list"))
	if !vp.HasVScrollbar() {
		t.Fatal("expected a vertical scrollbar")
	}
	g := e.geometry(vp)
	pos := Vec2{X: g.vStrip.X + g.vStrip.W/2, Y: g.vStrip.Y + 20}
	row := listRow(t, e, 0)
	if !row.Bounds.Contains(pos) {
		t.Fatalf("test layout changed: row %v not under the bar at %v", row.Bounds, pos)
	}

	stack := e.hitStack(pos)
	if len(stack) != 1 || stack[0] != vp {
		t.Fatalf("hit stack on the bar has %d entries, want only the viewport", len(stack))
	}

	e.OnPointerMove(pos, MouseButtonNone)
	e.OnPointerDown(pos, MouseButtonLeft)
	if e.capture != vp.ID {
		t.Errorf("capture = %d, want the viewport %d", e.capture, vp.ID)
	}
	if vp.Scroll.drag != dragVBar {
		t.Errorf("drag mode = %v, want vbar", vp.Scroll.drag)
	}
	if row.Pressed() {
		t.Error("row under the bar must not be pressed")
	}
	e.OnPointerUp(pos)
}

func TestContentOutsideViewportIsNotHit(t *testing.T) {
	e := newTestEngine(rowList)
	mustPaint(t, e)
	vp, _ := e.Widget(e.ID("list"))
	row := listRow(t, e, 3)
	pos := Vec2{X: vp.Bounds.X + 50, Y: row.Bounds.Y + 10}
	if !row.Bounds.Contains(pos) || vp.Bounds.Contains(pos) {
		t.Fatalf("test layout changed: row %v, viewport %v, pos %v", row.Bounds, vp.Bounds, pos)
	}

	if e.hitHierarchy(row, pos) {
		t.Error("a row scrolled out of its viewport must not be hit")
	}
	e.OnPointerMove(pos, MouseButtonNone)
	e.OnPointerDown(pos, MouseButtonLeft)
	if row.Pressed() || e.capture != 0 {
		t.Errorf("press below the viewport pressed the row (capture %d)", e.capture)
	}
	e.OnPointerUp(pos)
	if row.Checked() {
		t.Error("release below the viewport toggled the row")
	}
}
