package flowgui

import (
	"fmt"
	"math"
)

// DragSession is the state of one drag-and-drop gesture, from the press on
// the source widget until the frame after the drop.
type DragSession struct {
	Source ID
	Origin Vec2

	data    map[string]any
	target  ID
	dropped bool
	slot    GridSlot
	hasSlot bool
}

// GridSlot is a fractional (column, row) position in an item-grid
// viewport. Callers floor it to get the cell and use the fraction to tell
// insertion points apart.
type GridSlot struct {
	Viewport ID
	Cell     Vec2
}

// BeginDrag turns the widget placed last into a drag source. On the first
// frame of a press it records the pointer as the drag origin and returns
// true. On later frames it moves the widget's paint by the pointer travel
// and lifts its draw commands above everything else, unclipped, over a
// drop shadow. It
// returns false when the widget is not pressed.
func (e *Engine) BeginDrag() bool {
	w := e.mustCurrent("BeginDrag")
	if !w.Pressed() {
		return false
	}

	if !w.Dragging() {
		w.Flags.Set(FlagDragging, true)
		e.drag = &DragSession{
			Source: w.ID,
			Origin: e.pointer,
			data:   make(map[string]any),
		}
		e.capture = w.ID
		e.logger.Debug("drag started", "source", w.ID, "origin", e.pointer)
		return true
	}

	if e.drag == nil || e.drag.Source != w.ID {
		return true
	}
	w.paintOffset = e.pointer.Sub(e.drag.Origin)
	e.overlay.Callback(func(dc DrawingContext) {
		dc.DrawThemedRect(StyleDragShadow, w.PaintRect().Translate(Vec2{X: SpaceSM, Y: SpaceSM}))
	})
	if w.cmdList != nil {
		e.overlay.Cmds = append(e.overlay.Cmds, w.cmdList.cut(w.cmdStart)...)
	}
	return true
}

// SetDragData attaches a value to the active drag. Only the drag source
// may call it, right after placing itself.
func (e *Engine) SetDragData(tag string, v any) {
	w := e.mustCurrent("SetDragData")
	if e.drag == nil || e.drag.Source != w.ID {
		panic(fmt.Errorf("SetDragData(%q) on widget %d: %w", tag, w.ID, ErrNotDragging))
	}
	e.drag.data[tag] = v
}

// GetDropData returns a value attached to the current drag. A tag that was
// never set yields false.
func (e *Engine) GetDropData(tag string) (any, bool) {
	if e.drag == nil {
		return nil, false
	}
	v, ok := e.drag.data[tag]
	return v, ok
}

// PopDropData returns a value attached to the current drag and removes it,
// so no other drop target sees it.
func (e *Engine) PopDropData(tag string) (any, bool) {
	v, ok := e.GetDropData(tag)
	if ok {
		delete(e.drag.data, tag)
	}
	return v, ok
}

// DropValue is GetDropData with a type assertion.
func DropValue[T any](e *Engine, tag string) (T, bool) {
	var zero T
	v, ok := e.GetDropData(tag)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// BeginDrop reports whether the widget placed last is the target of the
// drop that just happened. It returns true once; later queries in the same
// frame return false.
func (e *Engine) BeginDrop() bool {
	w := e.mustCurrent("BeginDrop")
	d := e.drag
	if d == nil || !d.dropped || d.target == 0 || d.target != w.ID {
		return false
	}
	d.target = 0
	return true
}

// DropSlot returns the grid slot under the pointer while dragging over an
// item-grid viewport, or where the last drop landed.
func (e *Engine) DropSlot() (GridSlot, bool) {
	if e.drag == nil || !e.drag.hasSlot {
		return GridSlot{}, false
	}
	return e.drag.slot, true
}

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool {
	return e.drag != nil && !e.drag.dropped
}

// DragSource returns the source of the drag in progress, or 0.
func (e *Engine) DragSource() ID {
	if !e.Dragging() {
		return 0
	}
	return e.drag.Source
}

// CancelDrag abandons the drag in progress without a drop.
func (e *Engine) CancelDrag() {
	if e.drag == nil {
		return
	}
	if w, ok := e.store.get(e.drag.Source); ok {
		w.Flags.Set(FlagDragging|FlagPressed, false)
		if e.capture == w.ID {
			e.capture = 0
		}
	}
	e.drag = nil
	e.Repaint()
}

// updateDropSlot finds the innermost item-grid viewport under pos and
// stores the fractional cell of pos in it.
func (e *Engine) updateDropSlot(pos Vec2) {
	d := e.drag
	if d == nil {
		return
	}
	d.hasSlot = false
	for i := len(e.hitList) - 1; i >= 0; i-- {
		w := e.hitList[i]
		if w.Scroll == nil || w.Scroll.ItemSize.IsZero() || !e.hitHierarchy(w, pos) {
			continue
		}
		g := e.geometry(w)
		if !g.visible.Contains(pos) {
			continue
		}
		vs := w.Scroll
		d.slot = GridSlot{
			Viewport: w.ID,
			Cell:     pos.Sub(g.visible.Pos()).Add(vs.ScrollPos).DivVec(vs.ItemSize),
		}
		d.hasSlot = true
		return
	}
}

// finishDrag ends the drag of source at pos. It returns true when the
// pointer moved far enough for the gesture to count as a drop.
func (e *Engine) finishDrag(source *Widget, pos Vec2) bool {
	source.Flags.Set(FlagDragging, false)
	d := e.drag
	if d == nil || d.Source != source.ID {
		return false
	}
	travel := pos.Sub(d.Origin)
	if float32(math.Hypot(float64(travel.X), float64(travel.Y))) < e.style.DragThreshold {
		e.drag = nil
		return false
	}

	e.updateDropSlot(pos)
	d.dropped = true
	stack := e.hitStack(pos)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].ID != source.ID {
			d.target = stack[i].ID
			break
		}
	}
	e.logger.Debug("drop", "source", d.Source, "target", d.target, "slot", d.slot.Cell)
	return true
}

func (e *Engine) mustCurrent(op string) *Widget {
	if e.current == nil {
		panic(fmt.Errorf("%s: %w", op, ErrNoCurrentWidget))
	}
	return e.current
}
