package flowgui

import (
	"reflect"
	"testing"
)

func TestIdentityStableAcrossFrames(t *testing.T) {
	var ids [2][]ID
	frame := 0
	e := newTestEngine(func(e *Engine) {
		e.Button("ok", "OK")
		ids[frame] = append(ids[frame], e.Current().ID)
		for i := 0; i < 3; i++ {
			e.PushIDInt(i)
			e.Button("item", "Item")
			ids[frame] = append(ids[frame], e.Current().ID)
			e.PopID()
		}
	})
	mustPaint(t, e)
	frame = 1
	e.Repaint()
	mustPaint(t, e)

	if !reflect.DeepEqual(ids[0], ids[1]) {
		t.Fatalf("identities changed between frames: %v vs %v", ids[0], ids[1])
	}
	seen := make(map[ID]bool)
	for _, id := range ids[0] {
		if seen[id] {
			t.Fatalf("identity %d shared by two widgets", id)
		}
		seen[id] = true
	}
}

func TestIdentityKeepsViewportScroll(t *testing.T) {
	e := newTestEngine(func(e *Engine) {
		e.BeginViewport("list", Vec2{X: 100, Y: 100}, WithBorder(0))
		e.Space(Vec2{X: 50, Y: 500})
		e.EndViewport()
	})
	mustPaint(t, e)
	id := e.ID("list")
	e.ScrollTo(id, Vec2{Y: 120})
	mustPaint(t, e)
	mustPaint(t, e)

	w, ok := e.Widget(id)
	if !ok {
		t.Fatal("viewport record missing")
	}
	if w.Scroll.ScrollPos.Y != 120 {
		t.Errorf("expected scroll position to persist at 120, got %v", w.Scroll.ScrollPos.Y)
	}
}

func TestIDDiffersByStack(t *testing.T) {
	e := newTestEngine(nil)
	root := e.ID("x")
	e.PushID("a")
	a := e.ID("x")
	e.PopID()
	e.PushIDInt(1)
	one := e.ID("x")
	e.PopID()

	if root == a || root == one || a == one {
		t.Errorf("expected distinct IDs, got %d %d %d", root, a, one)
	}
	if e.ID("x") != root {
		t.Error("ID after popping should match the root ID")
	}
}

func TestLayoutDeterminism(t *testing.T) {
	sizes := []Vec2{{X: 30, Y: 10}, {X: 50, Y: 20}, {X: 70, Y: 15}, {X: 10, Y: 40}, {X: 90, Y: 5}}
	run := func() []Rect {
		var out []Rect
		e := New(func(e *Engine) {
			e.SameLine(true)
			for _, s := range sizes {
				out = append(out, e.Space(s))
			}
		}, WithSize(Vec2{X: 150, Y: 300}))
		mustPaint(t, e)
		return out
	}

	first := run()
	for i := 0; i < 5; i++ {
		if got := run(); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d placed %v, want %v", i, got, first)
		}
	}
}

func TestRowWrap(t *testing.T) {
	tests := []struct {
		name   string
		widths []float32
		want   []Vec2
	}{
		{
			name:   "fits exactly",
			widths: []float32{50, 50},
			want:   []Vec2{{X: 0, Y: 0}, {X: 50, Y: 0}},
		},
		{
			name:   "wraps on overflow",
			widths: []float32{40, 40, 40},
			want:   []Vec2{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 0, Y: 10}},
		},
		{
			name:   "oversized first element stays",
			widths: []float32{150, 20},
			want:   []Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Vec2
			e := New(func(e *Engine) {
				e.SetMargin(0)
				e.SameLine(true)
				e.BreakLines(true)
				for _, w := range tt.widths {
					got = append(got, e.Space(Vec2{X: w, Y: 10}).Pos())
				}
			}, WithSize(Vec2{X: 100, Y: 100}))
			mustPaint(t, e)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("positions = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoWrapWithoutBreakLines(t *testing.T) {
	var got []Rect
	e := New(func(e *Engine) {
		e.SetMargin(0)
		e.SameLine(true)
		e.BreakLines(false)
		for i := 0; i < 3; i++ {
			got = append(got, e.Space(Vec2{X: 60, Y: 10}))
		}
	}, WithSize(Vec2{X: 100, Y: 100}))
	mustPaint(t, e)
	if got[2].X != 120 || got[2].Y != 0 {
		t.Errorf("expected third element at (120, 0), got %v", got[2])
	}
}

func TestEveryElementOnNewRowWithoutSameLine(t *testing.T) {
	var got []Rect
	e := New(func(e *Engine) {
		for i := 0; i < 3; i++ {
			got = append(got, e.Space(Vec2{X: 10, Y: 10}))
		}
	}, WithSize(Vec2{X: 100, Y: 100}))
	mustPaint(t, e)
	margin := e.Style().Margin
	for i, r := range got {
		if r.X != 0 || r.Y != float32(i)*(10+margin) {
			t.Errorf("element %d at %v", i, r)
		}
	}
}

func TestGroupUnion(t *testing.T) {
	var before, after []Rect
	var placed Rect
	e := New(func(e *Engine) {
		e.SetMargin(0)
		e.SameLine(true)
		e.BreakLines(true)
		e.Space(Vec2{X: 80, Y: 10})

		e.BeginGroup()
		e.SameLine(false)
		before = before[:0]
		for i, size := range []Vec2{{X: 40, Y: 20}, {X: 30, Y: 15}} {
			e.PushIDInt(i)
			r := e.Space(size)
			e.UpdateWidget(e.ID("member"), WithBounds(r))
			before = append(before, r)
			e.PopID()
		}
		placed = e.EndGroup()

		after = after[:0]
		for i := range before {
			e.PushIDInt(i)
			w, _ := e.Widget(e.ID("member"))
			after = append(after, w.Bounds)
			e.PopID()
		}
	}, WithSize(Vec2{X: 100, Y: 100}))
	mustPaint(t, e)

	union := before[0].Union(before[1])
	if placed.Size() != union.Size() {
		t.Errorf("group size = %v, want union size %v", placed.Size(), union.Size())
	}
	if placed.Pos() != (Vec2{X: 0, Y: 10}) {
		t.Errorf("group should wrap to the next row, placed at %v", placed.Pos())
	}
	delta := after[0].Pos().Sub(before[0].Pos())
	for i := range before {
		if got := after[i].Pos().Sub(before[i].Pos()); got != delta {
			t.Errorf("member %d moved by %v, want %v", i, got, delta)
		}
	}
	if delta != placed.Pos().Sub(union.Pos()) {
		t.Errorf("members moved by %v, group moved by %v", delta, placed.Pos().Sub(union.Pos()))
	}
}

func TestGroupMovesNestedViewport(t *testing.T) {
	var vpBefore, innerBefore, placed Rect
	e := New(func(e *Engine) {
		e.SetMargin(0)
		e.SameLine(true)
		e.BreakLines(true)
		e.Space(Vec2{X: 80, Y: 10})

		e.BeginGroup()
		vp := e.BeginViewport("vp", Vec2{X: 100, Y: 60}, WithBorder(0))
		vpBefore = vp.Bounds
		e.SetMargin(0)
		innerBefore = e.Space(Vec2{X: 40, Y: 40})
		e.UpdateWidget(e.ID("inner"), WithBounds(innerBefore))
		e.EndViewport()
		placed = e.EndGroup()
	}, WithSize(Vec2{X: 150, Y: 200}))
	dc := mustPaint(t, e)

	if placed.Pos() != (Vec2{X: 0, Y: 10}) {
		t.Fatalf("group should wrap to the next row, placed at %v", placed.Pos())
	}
	vp, _ := e.Widget(e.ID("vp"))
	inner, _ := e.Widget(e.ID("inner"))
	delta := vp.Bounds.Pos().Sub(vpBefore.Pos())
	if delta != placed.Pos().Sub(vpBefore.Pos()) {
		t.Errorf("viewport moved by %v, group moved by %v", delta, placed.Pos().Sub(vpBefore.Pos()))
	}
	if got := inner.Bounds.Pos().Sub(innerBefore.Pos()); got != delta {
		t.Errorf("viewport content moved by %v, want %v", got, delta)
	}

	visible := e.geometry(vp).visible
	found := false
	for _, r := range dc.clipRects {
		if r == visible {
			found = true
		}
	}
	if !found {
		t.Errorf("no clip at the moved viewport %v, got %v", visible, dc.clipRects)
	}

	stack := e.hitStack(center(inner.Bounds))
	if len(stack) == 0 || stack[len(stack)-1] != inner {
		t.Error("content of the moved viewport should be on top of the hit stack")
	}
}

func TestAlignOverride(t *testing.T) {
	var r Rect
	e := New(func(e *Engine) {
		e.SetAlign(AlignCenter)
		r = e.Space(Vec2{X: 20, Y: 10})
		e.ClearAlign()
	}, WithSize(Vec2{X: 100, Y: 50}))
	mustPaint(t, e)
	if r.X != 40 || r.Y != 20 {
		t.Errorf("centered element at %v, want (40, 20)", r)
	}
}
