package flowgui

// Flags is the state bitset of a widget.
type Flags uint16

const (
	FlagPressed Flags = 1 << iota
	FlagDisabled
	FlagFocused
	FlagChecked
	FlagHover
	FlagDragging
	FlagHScrollbar
	FlagVScrollbar
	FlagWantsFocus
)

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Set turns the bits of mask on or off.
func (f *Flags) Set(mask Flags, on bool) {
	if on {
		*f |= mask
	} else {
		*f &^= mask
	}
}

// PointerEvent is what widget pointer callbacks receive.
type PointerEvent struct {
	Pos    Vec2
	Button MouseButton
}

// Widget is the retained state of one widget. Records are owned by the
// engine and live until pruned; callers get pointers back from
// UpdateWidget and the primitives and may customize them until the next
// widget is placed.
type Widget struct {
	ID     ID
	Bounds Rect // surface coordinates
	Flags  Flags

	// Parent is the enclosing viewport widget, 0 at the root. It is only
	// used for containment queries.
	Parent ID

	// Scroll is non-nil for scrollable viewports.
	Scroll *ViewportState

	// Data is free for the caller.
	Data any

	// OnPointerDown returns true to capture the pointer.
	OnPointerDown    func(w *Widget, ev PointerEvent) bool
	OnPointerMove    func(w *Widget, ev PointerEvent)
	OnPointerUp      func(w *Widget, ev PointerEvent)
	OnDoubleClick    func(w *Widget, ev PointerEvent)
	OnContextRequest func(w *Widget, ev PointerEvent)
	// OnKey receives keys while the widget is focused. Return true when
	// the key was consumed.
	OnKey func(w *Widget, key Key, mods Modifiers) bool
	// OnResize fires when the user finishes resizing a viewport. cells is
	// the new (columns, rows) count.
	OnResize func(w *Widget, cells Vec2)

	lastFrame   uint64
	pass        uint64
	paintOffset Vec2
	toggled     bool
	cmdList     *DrawList
	cmdStart    int
}

func (w *Widget) Pressed() bool       { return w.Flags.Has(FlagPressed) }
func (w *Widget) Disabled() bool      { return w.Flags.Has(FlagDisabled) }
func (w *Widget) Focused() bool       { return w.Flags.Has(FlagFocused) }
func (w *Widget) Checked() bool       { return w.Flags.Has(FlagChecked) }
func (w *Widget) Hover() bool         { return w.Flags.Has(FlagHover) }
func (w *Widget) Dragging() bool      { return w.Flags.Has(FlagDragging) }
func (w *Widget) HasHScrollbar() bool { return w.Flags.Has(FlagHScrollbar) }
func (w *Widget) HasVScrollbar() bool { return w.Flags.Has(FlagVScrollbar) }
func (w *Widget) WantsFocus() bool    { return w.Flags.Has(FlagWantsFocus) }

// SetChecked sets the checked flag.
func (w *Widget) SetChecked(v bool) { w.Flags.Set(FlagChecked, v) }

// SetDisabled sets the disabled flag.
func (w *Widget) SetDisabled(v bool) { w.Flags.Set(FlagDisabled, v) }

// PaintRect is where the widget is drawn this frame: its bounds moved by
// the drag offset, if it is being dragged.
func (w *Widget) PaintRect() Rect {
	return w.Bounds.Translate(w.paintOffset)
}

// LastFrame returns the frame in which the widget was last referenced.
func (w *Widget) LastFrame() uint64 { return w.lastFrame }

// Field sets one attribute of a widget record. created is true when the
// record was allocated by this call.
type Field func(w *Widget, created bool)

// WithBounds sets the widget bounds.
func WithBounds(r Rect) Field {
	return func(w *Widget, _ bool) { w.Bounds = r }
}

// WithDisabled sets the disabled flag.
func WithDisabled(v bool) Field {
	return func(w *Widget, _ bool) { w.Flags.Set(FlagDisabled, v) }
}

// WithWantsFocus marks the widget as a keyboard focus target.
func WithWantsFocus(v bool) Field {
	return func(w *Widget, _ bool) { w.Flags.Set(FlagWantsFocus, v) }
}

// WithChecked overwrites the checked flag every time it is applied.
func WithChecked(v bool) Field {
	return func(w *Widget, _ bool) { w.Flags.Set(FlagChecked, v) }
}

// DefaultChecked sets the checked flag only when the widget is created.
func DefaultChecked(v bool) Field {
	return func(w *Widget, created bool) {
		if created {
			w.Flags.Set(FlagChecked, v)
		}
	}
}

// WithParent overrides the enclosing viewport.
func WithParent(id ID) Field {
	return func(w *Widget, _ bool) { w.Parent = id }
}

// WithData stores a caller value on the widget.
func WithData(v any) Field {
	return func(w *Widget, _ bool) { w.Data = v }
}

// WithPointerDown sets the pointer-down callback.
func WithPointerDown(fn func(w *Widget, ev PointerEvent) bool) Field {
	return func(w *Widget, _ bool) { w.OnPointerDown = fn }
}

// WithPointerMove sets the pointer-move callback.
func WithPointerMove(fn func(w *Widget, ev PointerEvent)) Field {
	return func(w *Widget, _ bool) { w.OnPointerMove = fn }
}

// WithPointerUp sets the pointer-up callback.
func WithPointerUp(fn func(w *Widget, ev PointerEvent)) Field {
	return func(w *Widget, _ bool) { w.OnPointerUp = fn }
}

// WithDoubleClick sets the double-click callback.
func WithDoubleClick(fn func(w *Widget, ev PointerEvent)) Field {
	return func(w *Widget, _ bool) { w.OnDoubleClick = fn }
}

// WithContextRequest sets the context-menu callback.
func WithContextRequest(fn func(w *Widget, ev PointerEvent)) Field {
	return func(w *Widget, _ bool) { w.OnContextRequest = fn }
}

// WithKey sets the keyboard callback.
func WithKey(fn func(w *Widget, key Key, mods Modifiers) bool) Field {
	return func(w *Widget, _ bool) { w.OnKey = fn }
}

// UpdateWidget creates the record for id or merges fields into the
// existing one, then makes it the current widget. The parent defaults to
// the active viewport. Referencing the same id twice in a pass is allowed;
// the later fields win.
func (e *Engine) UpdateWidget(id ID, fields ...Field) *Widget {
	w, created := e.store.getOrCreate(id)
	if created {
		w.Parent = e.layout.viewport
		e.store.checkGrowth(e.logger)
	} else if w.pass != e.pass {
		w.Parent = e.layout.viewport
	}
	for _, f := range fields {
		f(w, created)
	}

	w.lastFrame = e.frame
	w.paintOffset = Vec2{}
	w.cmdList = e.layout.list
	w.cmdStart = e.layout.list.Len()
	e.layout.owners = append(e.layout.owners, w)

	if w.pass != e.pass {
		w.pass = e.pass
		e.candidates = append(e.candidates, w)
	}
	for _, g := range e.groups {
		g.add(w)
	}
	e.current = w
	return w
}

// Current returns the widget placed last in this pass.
// It panics when nothing has been placed yet.
func (e *Engine) Current() *Widget {
	return e.mustCurrent("Current")
}

// Widget looks up a retained widget record.
func (e *Engine) Widget(id ID) (*Widget, bool) {
	return e.store.get(id)
}
