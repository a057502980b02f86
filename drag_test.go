package flowgui

import "testing"

// dragPair builds two buttons where "a" can be dragged onto "b" and
// counts BeginDrop hits per button.
type dragPair struct {
	drops   map[string]int
	payload string
	clicked int
}

func (p *dragPair) build(e *Engine) {
	e.SameLine(true)
	if e.Button("a", "A") {
		p.clicked++
	}
	if e.BeginDrag() {
		e.SetDragData("item", "A")
	}
	if e.BeginDrop() {
		p.drops["a"]++
	}

	e.Button("b", "B")
	for i := 0; i < 2; i++ {
		if e.BeginDrop() {
			p.drops["b"]++
			p.payload, _ = DropValue[string](e, "item")
		}
	}
}

func TestDragDropOntoSibling(t *testing.T) {
	p := &dragPair{drops: make(map[string]int)}
	e := newTestEngine(p.build)
	mustPaint(t, e)

	a, _ := e.Widget(e.ID("a"))
	b, _ := e.Widget(e.ID("b"))
	start := Vec2{X: a.Bounds.X + 5, Y: a.Bounds.Y + 5}
	end := start.Add(Vec2{X: 15})
	if !b.Bounds.Contains(end) {
		t.Fatalf("test layout changed: %v not over B %v", end, b.Bounds)
	}

	e.OnPointerMove(start, MouseButtonNone)
	e.OnPointerDown(start, MouseButtonLeft)
	mustPaint(t, e)
	if !e.Dragging() || e.DragSource() != a.ID {
		t.Fatal("expected A to be dragging after the press")
	}

	e.OnPointerMove(end, MouseButtonLeft)
	mustPaint(t, e)
	if got := a.PaintRect().X - a.Bounds.X; got != 15 {
		t.Errorf("dragged widget painted %v px from its bounds, want 15", got)
	}

	e.OnPointerUp(end)
	mustPaint(t, e)

	if p.drops["b"] != 1 {
		t.Errorf("expected exactly one drop on B, got %d", p.drops["b"])
	}
	if p.drops["a"] != 0 {
		t.Errorf("expected no drop on A, got %d", p.drops["a"])
	}
	if p.payload != "A" {
		t.Errorf("drop payload = %q, want %q", p.payload, "A")
	}
	if p.clicked != 0 {
		t.Error("a drop must not count as a click on the source")
	}

	mustPaint(t, e)
	if p.drops["b"] != 1 {
		t.Errorf("drop reported again on a later frame: %d", p.drops["b"])
	}
	if e.Dragging() {
		t.Error("drag session should end after the drop frame")
	}
}

func TestDragBelowThresholdIsClick(t *testing.T) {
	p := &dragPair{drops: make(map[string]int)}
	e := newTestEngine(p.build)
	mustPaint(t, e)

	a, _ := e.Widget(e.ID("a"))
	start := Vec2{X: a.Bounds.X + 5, Y: a.Bounds.Y + 5}
	e.OnPointerMove(start, MouseButtonNone)
	e.OnPointerDown(start, MouseButtonLeft)
	mustPaint(t, e)
	e.OnPointerMove(start.Add(Vec2{X: 2}), MouseButtonLeft)
	mustPaint(t, e)
	e.OnPointerUp(start.Add(Vec2{X: 2}))
	mustPaint(t, e)

	if p.clicked != 1 {
		t.Errorf("expected a click, got %d", p.clicked)
	}
	if len(p.drops) != 0 {
		t.Errorf("expected no drops, got %v", p.drops)
	}
}

func TestEscapeCancelsDrag(t *testing.T) {
	p := &dragPair{drops: make(map[string]int)}
	e := newTestEngine(p.build)
	mustPaint(t, e)

	a, _ := e.Widget(e.ID("a"))
	b, _ := e.Widget(e.ID("b"))
	start := Vec2{X: a.Bounds.X + 5, Y: a.Bounds.Y + 5}
	end := Vec2{X: b.Bounds.X + 5, Y: b.Bounds.Y + 5}
	e.OnPointerMove(start, MouseButtonNone)
	e.OnPointerDown(start, MouseButtonLeft)
	mustPaint(t, e)
	e.OnPointerMove(end, MouseButtonLeft)
	mustPaint(t, e)

	if !e.OnKey(KeyEscape, 0) {
		t.Error("Escape during a drag should be consumed")
	}
	if e.Dragging() {
		t.Fatal("drag still active after Escape")
	}
	e.OnPointerUp(end)
	mustPaint(t, e)
	if len(p.drops) != 0 || p.clicked != 0 {
		t.Errorf("cancelled drag produced drops %v and %d clicks", p.drops, p.clicked)
	}
}

func TestDropSlotInItemGrid(t *testing.T) {
	dropped := -1
	var slot GridSlot
	var hasSlot bool
	e := newTestEngine(func(e *Engine) {
		e.BeginViewport("grid", Vec2{X: 200, Y: 200}, WithBorder(0), WithItemSize(Vec2{X: 32, Y: 32}))
		e.SetMargin(0)
		for i := 0; i < 20; i++ {
			e.PushIDInt(i)
			r := e.Space(Vec2{X: 32, Y: 32})
			e.UpdateWidget(e.ID("tile"), WithBounds(r))
			if e.BeginDrag() {
				e.SetDragData("tile", i)
			}
			if e.BeginDrop() {
				dropped = i
				slot, hasSlot = e.DropSlot()
			}
			e.PopID()
		}
		e.EndViewport()
	})
	mustPaint(t, e)

	start := Vec2{X: 5, Y: 5}
	end := Vec2{X: 2*32 + 5, Y: 32 + 5}
	e.OnPointerMove(start, MouseButtonNone)
	e.OnPointerDown(start, MouseButtonLeft)
	mustPaint(t, e)
	e.OnPointerMove(end, MouseButtonLeft)
	if s, ok := e.DropSlot(); !ok || floorf(s.Cell.X) != 2 || floorf(s.Cell.Y) != 1 {
		t.Errorf("hover slot = %v (%v), want cell (2, 1)", s, ok)
	}
	mustPaint(t, e)
	e.OnPointerUp(end)
	mustPaint(t, e)

	// 200px wide grid holds 6 columns.
	if dropped != 8 {
		t.Errorf("dropped on tile %d, want 8", dropped)
	}
	if !hasSlot || slot.Viewport != e.ID("grid") {
		t.Fatalf("drop slot = %v (%v)", slot, hasSlot)
	}
	if floorf(slot.Cell.X) != 2 || floorf(slot.Cell.Y) != 1 {
		t.Errorf("drop cell = %v, want (2, 1)", slot.Cell)
	}
}

func TestDropValueTypeMismatch(t *testing.T) {
	e := newTestEngine(nil)
	e.drag = &DragSession{data: map[string]any{"n": 3}}
	if _, ok := DropValue[string](e, "n"); ok {
		t.Error("DropValue with the wrong type should report false")
	}
	if v, ok := DropValue[int](e, "n"); !ok || v != 3 {
		t.Errorf("DropValue[int] = %v, %v", v, ok)
	}
	if _, ok := e.GetDropData("missing"); ok {
		t.Error("unset tag should report no value")
	}
	if _, ok := e.PopDropData("n"); !ok {
		t.Error("PopDropData should return the value")
	}
	if _, ok := e.GetDropData("n"); ok {
		t.Error("popped tag should be gone")
	}
}

func TestDragLiftsWidgetPlacedInGroup(t *testing.T) {
	e := newTestEngine(func(e *Engine) {
		e.BeginGroup()
		e.Button("g", "Grouped")
		e.EndGroup()
		e.BeginDrag()
		e.Label("below")
	})
	mustPaint(t, e)

	g, _ := e.Widget(e.ID("g"))
	start := center(g.Bounds)
	end := start.Add(Vec2{X: 30})
	e.OnPointerMove(start, MouseButtonNone)
	e.OnPointerDown(start, MouseButtonLeft)
	mustPaint(t, e)
	e.OnPointerMove(end, MouseButtonLeft)
	dc := mustPaint(t, e)

	below := dc.index(`text "below"`)
	shadow := dc.index("rect " + string(StyleDragShadow))
	label := dc.index(`text "Grouped"`)
	if below < 0 || shadow < 0 || label < 0 {
		t.Fatalf("missing ops: below %d shadow %d label %d in %v", below, shadow, label, dc.ops)
	}
	if !(below < shadow && shadow < label) {
		t.Errorf("dragged button not lifted over its shadow: below %d shadow %d label %d", below, shadow, label)
	}
	if n := dc.count(`text "Grouped"`); n != 1 {
		t.Errorf("dragged button drawn %d times", n)
	}
}
