package flowgui

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"
)

// recordingDC is a DrawingContext that measures every glyph as 8x16 and
// records what is drawn.
type recordingDC struct {
	ops       []string
	clips     int
	clipRects []Rect
	depth     int
}

func (d *recordingDC) MeasureText(text string) (Vec2, error) {
	return Vec2{X: float32(8 * len(text)), Y: 16}, nil
}

func (d *recordingDC) FillText(text string, x, y float32) {
	d.ops = append(d.ops, fmt.Sprintf("text %q %g,%g", text, x, y))
}

func (d *recordingDC) DrawImage(img image.Image, src, dst Rect) {
	d.ops = append(d.ops, fmt.Sprintf("image %v", dst))
}

func (d *recordingDC) DrawThemedRect(style StyleID, r Rect) {
	d.ops = append(d.ops, fmt.Sprintf("rect %s %v", style, r))
}

func (d *recordingDC) Save()    { d.depth++ }
func (d *recordingDC) Restore() { d.depth-- }
func (d *recordingDC) Clip(r Rect) {
	d.clips++
	d.clipRects = append(d.clipRects, r)
}

func (d *recordingDC) count(prefix string) int {
	n := 0
	for _, op := range d.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

// index returns the position of the first op starting with prefix, or -1.
func (d *recordingDC) index(prefix string) int {
	for i, op := range d.ops {
		if strings.HasPrefix(op, prefix) {
			return i
		}
	}
	return -1
}

func newTestEngine(build BuildFunc) *Engine {
	return New(build, WithSize(Vec2{X: 800, Y: 600}))
}

func mustPaint(t *testing.T, e *Engine) *recordingDC {
	t.Helper()
	dc := &recordingDC{}
	if err := e.OnPaint(dc); err != nil {
		t.Fatalf("OnPaint() returned error: %v", err)
	}
	if dc.depth != 0 {
		t.Fatalf("unbalanced Save/Restore: depth %d", dc.depth)
	}
	return dc
}

// click presses and releases the left button at pos, painting after each
// event like a host would.
func click(t *testing.T, e *Engine, pos Vec2) {
	t.Helper()
	e.OnPointerMove(pos, MouseButtonNone)
	e.OnPointerDown(pos, MouseButtonLeft)
	mustPaint(t, e)
	e.OnPointerUp(pos)
	mustPaint(t, e)
}

func TestPaintDrawsStablePass(t *testing.T) {
	builds := 0
	e := newTestEngine(func(e *Engine) {
		builds++
		e.Label("Hello")
	})

	dc := mustPaint(t, e)
	if builds != 1 {
		t.Errorf("expected 1 build pass, got %d", builds)
	}
	if n := dc.count(`text "Hello"`); n != 1 {
		t.Errorf("expected label drawn once, got %d (%v)", n, dc.ops)
	}
	if e.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", e.Frame())
	}
	if e.NeedsPaint() {
		t.Error("stable paint should leave no pending repaint")
	}
}

func TestRepaintRebuildsBeforeDrawing(t *testing.T) {
	builds := 0
	e := newTestEngine(func(e *Engine) {
		builds++
		e.Label(fmt.Sprintf("pass %d", builds))
		if builds < 3 {
			e.Repaint()
		}
	})

	dc := mustPaint(t, e)
	if builds != 3 {
		t.Fatalf("expected 3 build passes, got %d", builds)
	}
	if len(dc.ops) != 1 || !strings.Contains(dc.ops[0], "pass 3") {
		t.Errorf("only the stable pass should be drawn, got %v", dc.ops)
	}
	if s := e.Stats(); s.Passes != 3 {
		t.Errorf("expected stats to record 3 passes, got %d", s.Passes)
	}
}

func TestRebuildLimit(t *testing.T) {
	e := New(func(e *Engine) {
		e.Label("unstable")
		e.Repaint()
	}, WithStyle(Style{MaxRebuilds: 3}))

	dc := &recordingDC{}
	err := e.OnPaint(dc)
	if !errors.Is(err, ErrRebuildLimit) {
		t.Fatalf("expected ErrRebuildLimit, got %v", err)
	}
	if len(dc.ops) != 0 {
		t.Errorf("nothing should be drawn after hitting the limit, got %v", dc.ops)
	}
}

func TestAfterPaintRunsOnce(t *testing.T) {
	calls := 0
	queued := false
	e := newTestEngine(func(e *Engine) {
		if !queued {
			queued = true
			e.AfterPaint(func() { calls++ })
		}
	})
	mustPaint(t, e)
	mustPaint(t, e)
	if calls != 1 {
		t.Errorf("expected after-paint callback to run once, got %d", calls)
	}
}

func TestBeforePaintQueuedBetweenPaints(t *testing.T) {
	calls := 0
	e := newTestEngine(func(e *Engine) {
		e.Button("b", "B", WithPointerDown(func(*Widget, PointerEvent) bool {
			e.BeforePaint(func() { calls++ })
			return false
		}))
	})
	mustPaint(t, e)
	b, _ := e.Widget(e.ID("b"))
	e.OnPointerDown(center(b.Bounds), MouseButtonLeft)
	if calls != 0 {
		t.Fatal("callback ran before any build")
	}
	mustPaint(t, e)
	e.Repaint()
	mustPaint(t, e)
	if calls != 1 {
		t.Errorf("before-paint callback queued from input ran %d times, want 1", calls)
	}
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}

func TestUnbalancedIDPanics(t *testing.T) {
	e := newTestEngine(func(e *Engine) {
		e.PushID("row")
	})
	expectPanic(t, ErrUnbalancedID, func() { _ = e.OnPaint(&recordingDC{}) })

	e = newTestEngine(func(e *Engine) {
		e.PopID()
	})
	expectPanic(t, ErrUnbalancedID, func() { _ = e.OnPaint(&recordingDC{}) })
}

func TestUnbalancedLayoutPanics(t *testing.T) {
	e := newTestEngine(func(e *Engine) {
		e.PushLayout()
	})
	expectPanic(t, ErrUnbalancedLayout, func() { _ = e.OnPaint(&recordingDC{}) })

	e = newTestEngine(func(e *Engine) {
		e.PopLayout()
	})
	expectPanic(t, ErrUnbalancedLayout, func() { _ = e.OnPaint(&recordingDC{}) })

	e = newTestEngine(func(e *Engine) {
		e.BeginViewport("vp", Vec2{X: 100, Y: 100})
		e.PopLayout()
	})
	expectPanic(t, ErrUnbalancedLayout, func() { _ = e.OnPaint(&recordingDC{}) })
}

func TestDragOutsideWidgetPanics(t *testing.T) {
	e := newTestEngine(func(e *Engine) {
		e.BeginDrag()
	})
	expectPanic(t, ErrNoCurrentWidget, func() { _ = e.OnPaint(&recordingDC{}) })

	e = newTestEngine(func(e *Engine) {
		e.Label("not dragging")
		e.SetDragData("tag", 1)
	})
	expectPanic(t, ErrNotDragging, func() { _ = e.OnPaint(&recordingDC{}) })
}

func TestPrune(t *testing.T) {
	showExtra := true
	e := newTestEngine(func(e *Engine) {
		e.Button("keep", "Keep")
		if showExtra {
			e.Button("extra", "Extra")
		}
	})
	mustPaint(t, e)
	if got := e.store.len(); got != 2 {
		t.Fatalf("expected 2 widgets, got %d", got)
	}

	showExtra = false
	for i := 0; i < 3; i++ {
		e.Repaint()
		mustPaint(t, e)
	}
	if n := e.Prune(1); n != 1 {
		t.Errorf("expected 1 pruned widget, got %d", n)
	}
	if _, ok := e.Widget(e.ID("keep")); !ok {
		t.Error("referenced widget must survive pruning")
	}
	if _, ok := e.Widget(e.ID("extra")); ok {
		t.Error("unreferenced widget should have been pruned")
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{Frame: 12345, Passes: 2, Widgets: 1500, Candidates: 20}
	got := s.String()
	for _, want := range []string{"12,345", "2 passes", "1,500 widgets"} {
		if !strings.Contains(got, want) {
			t.Errorf("Stats.String() = %q, missing %q", got, want)
		}
	}
}
