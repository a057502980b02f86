package flowgui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota - 1
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
)

// Modifiers is the set of modifier keys held during a key event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyTab:       "Tab",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyDown:      "Down",
		KeyPageUp:    "PgUp",
		KeyPageDown:  "PgDn",
		KeyHome:      "Home",
		KeyEnd:       "End",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeySpace:     "Space",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// hitHierarchy reports whether pos is inside w and inside every viewport
// enclosing it, so content scrolled out of view is never hit.
func (e *Engine) hitHierarchy(w *Widget, pos Vec2) bool {
	if !w.Bounds.Contains(pos) {
		return false
	}
	for p := w.Parent; p != 0; {
		pw, ok := e.store.get(p)
		if !ok {
			break
		}
		if !pw.Bounds.Contains(pos) {
			return false
		}
		p = pw.Parent
	}
	return true
}

// hitStack returns the widgets of the last completed pass under pos,
// bottom first. When pos is on the scrollbar of a viewport, everything
// stacked above the outermost such viewport is cut off so its content
// cannot steal the bar.
func (e *Engine) hitStack(pos Vec2) []*Widget {
	stack := e.hitScratch[:0]
	for _, w := range e.hitList {
		if e.hitHierarchy(w, pos) {
			stack = append(stack, w)
		}
	}
	for i, w := range stack {
		if w.Scroll != nil && e.barHit(w, pos) {
			stack = stack[:i+1]
			break
		}
	}
	e.hitScratch = stack
	return stack
}

// OnPointerMove feeds a pointer position to the engine. button is the
// button held, or MouseButtonNone.
func (e *Engine) OnPointerMove(pos Vec2, button MouseButton) {
	e.pointer = pos
	ev := PointerEvent{Pos: pos, Button: button}

	if c, ok := e.captured(); ok && c.Scroll != nil && c.Scroll.drag != dragNone {
		e.viewportPointerMove(c, pos)
	}

	for _, w := range e.hitList {
		if w.OnPointerMove != nil {
			w.OnPointerMove(w, ev)
		}
		if w.Scroll != nil && w.Scroll.drag == dragNone && e.viewportHover(w, pos) {
			e.Repaint()
		}
		hover := e.hitHierarchy(w, pos) && (e.capture == 0 || e.capture == w.ID)
		if hover != w.Hover() {
			w.Flags.Set(FlagHover, hover)
			e.Repaint()
		}
	}

	if e.Dragging() {
		e.updateDropSlot(pos)
		e.Repaint()
	}
}

// OnPointerDown dispatches a button press. Widgets under the pointer are
// offered the press from the top down until one captures it.
func (e *Engine) OnPointerDown(pos Vec2, button MouseButton) {
	e.pointer = pos
	ev := PointerEvent{Pos: pos, Button: button}
	stack := e.hitStack(pos)

	if button == MouseButtonRight && len(stack) > 0 {
		if top := stack[len(stack)-1]; top.OnContextRequest != nil {
			top.OnContextRequest(top, ev)
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		if w.Scroll != nil && e.viewportPointerDown(w, ev) {
			e.capture = w.ID
			return
		}
		if w.OnPointerDown != nil && w.OnPointerDown(w, ev) {
			e.capture = w.ID
			e.Repaint()
			return
		}
		if button == MouseButtonLeft && !w.Disabled() {
			w.Flags.Set(FlagPressed|FlagHover, true)
			if w.WantsFocus() {
				e.SetFocus(w.ID)
			}
			e.capture = w.ID
			e.Repaint()
			return
		}
	}
}

// OnPointerUp releases the pointer. Only the captured widget hears about
// it. A press released over its widget without dragging toggles the
// widget's checked flag; a drag records the widget under the pointer as
// the drop target. A release that drops, or that lands outside the
// widget, leaves the checked flag alone rather than toggling on every
// pressed release.
func (e *Engine) OnPointerUp(pos Vec2) {
	e.pointer = pos
	w, ok := e.captured()
	e.capture = 0
	if !ok {
		return
	}
	ev := PointerEvent{Pos: pos, Button: MouseButtonNone}

	if w.Scroll != nil {
		e.viewportPointerUp(w)
	}
	if w.OnPointerUp != nil {
		w.OnPointerUp(w, ev)
	}

	if w.Pressed() {
		dropped := false
		if w.Dragging() {
			dropped = e.finishDrag(w, pos)
		}
		if !dropped && w.Scroll == nil && e.hitHierarchy(w, pos) {
			w.Flags.Set(FlagChecked, !w.Checked())
			w.toggled = true
		}
		w.Flags.Set(FlagPressed, false)
	}
	w.Flags.Set(FlagHover, e.hitHierarchy(w, pos))
	e.Repaint()
}

// OnDoubleClick dispatches a double click to the topmost widget under the
// pointer.
func (e *Engine) OnDoubleClick(pos Vec2, button MouseButton) {
	e.pointer = pos
	stack := e.hitStack(pos)
	if len(stack) == 0 {
		return
	}
	if top := stack[len(stack)-1]; top.OnDoubleClick != nil {
		top.OnDoubleClick(top, PointerEvent{Pos: pos, Button: button})
		e.Repaint()
	}
}

// OnWheel scrolls the innermost viewport under pos that can move in the
// wheel direction. delta is in wheel notches, positive up and left.
func (e *Engine) OnWheel(pos Vec2, delta Vec2) {
	e.pointer = pos
	step := delta.Mul(-e.style.WheelStep)
	stack := e.hitStack(pos)
	for i := len(stack) - 1; i >= 0; i-- {
		if w := stack[i]; w.Scroll != nil && e.ScrollBy(w.ID, step) {
			return
		}
	}
}

// OnKey delivers a key press to the focused widget. Unconsumed Tab and
// arrow keys move the focus. Escape clears it and cancels a drag. It
// reports whether the key was used.
func (e *Engine) OnKey(key Key, mods Modifiers) bool {
	if w, ok := e.store.get(e.focus); ok && w.OnKey != nil {
		if w.OnKey(w, key, mods) {
			e.Repaint()
			return true
		}
	}
	if dir, ok := navDirection(key); ok && e.focus != 0 {
		return e.FocusNavigate(dir)
	}
	switch key {
	case KeyTab:
		return e.FocusNext(mods&ModShift != 0)
	case KeyEscape:
		used := e.focus != 0 || e.drag != nil
		e.CancelDrag()
		e.ClearFocus()
		return used
	}
	return false
}

func (e *Engine) captured() (*Widget, bool) {
	if e.capture == 0 {
		return nil, false
	}
	return e.store.get(e.capture)
}

// Pointer returns the last known pointer position.
func (e *Engine) Pointer() Vec2 { return e.pointer }
