package flowgui

import "fmt"

// AlignFunc positions an element directly instead of flowing it. It gets
// the content frame of the active layout and the element size and returns
// the element's top-left corner. Elements placed through an AlignFunc do
// not advance the cursor.
type AlignFunc func(frame Rect, size Vec2) Vec2

// AlignRight places elements against the right edge of the frame, on the
// current row.
func AlignRight(e *Engine) AlignFunc {
	return func(frame Rect, size Vec2) Vec2 {
		return Vec2{X: frame.Right() - size.X, Y: e.layout.cursor.Y}
	}
}

// AlignCenter centers elements in the frame.
func AlignCenter(frame Rect, size Vec2) Vec2 {
	return Vec2{X: frame.X + (frame.W-size.X)/2, Y: frame.Y + (frame.H-size.Y)/2}
}

type layoutKind uint8

const (
	kindRoot layoutKind = iota
	kindLayout
	kindGroup
	kindViewport
	kindClip
)

func (k layoutKind) String() string {
	switch k {
	case kindRoot:
		return "root"
	case kindLayout:
		return "layout"
	case kindGroup:
		return "group"
	case kindViewport:
		return "viewport"
	case kindClip:
		return "clip"
	default:
		return "unknown"
	}
}

// layoutContext is one flow scope.
type layoutContext struct {
	kind layoutKind

	cursor     Vec2
	rowHeight  float32
	rowUsed    bool
	sameLine   bool
	breakLines bool
	margin     float32
	align      AlignFunc
	last       Rect

	// frame is where rows start and wrap, in surface coordinates. Inside a
	// scrolled viewport its origin is the viewport origin minus scroll.
	frame Rect
	clip  Rect

	viewport ID

	// Union of everything placed in this scope.
	bounds    Rect
	hasBounds bool

	list *DrawList
	// owners are the widgets whose draw commands start in list.
	owners []*Widget
}

func (l *layoutContext) track(r Rect) {
	if !l.hasBounds {
		l.bounds = r
		l.hasBounds = true
		return
	}
	l.bounds = l.bounds.Union(r)
}

// child starts a nested scope at the current cursor that inherits the flow
// settings of l.
func (l *layoutContext) child(kind layoutKind) *layoutContext {
	return &layoutContext{
		kind:       kind,
		cursor:     l.cursor,
		sameLine:   l.sameLine,
		breakLines: l.breakLines,
		margin:     l.margin,
		frame:      l.frame,
		clip:       l.clip,
		viewport:   l.viewport,
		list:       acquireDrawList(),
	}
}

// advanceCursor is the single placement primitive. It finds the position
// of an element of the given size, calls place with the final rectangle
// and moves the cursor past it.
func (e *Engine) advanceCursor(size Vec2, place func(r Rect)) Rect {
	l := e.layout

	if l.align != nil {
		r := RectAt(l.align(l.frame, size), size)
		if place != nil {
			place(r)
		}
		l.last = r
		l.track(r)
		return r
	}

	if l.rowUsed && (!l.sameLine || (l.breakLines && l.cursor.X+size.X > l.frame.Right())) {
		l.cursor.Y += l.rowHeight + l.margin
		l.cursor.X = l.frame.X
		l.rowHeight = 0
	}

	r := RectAt(l.cursor, size)
	if place != nil {
		place(r)
	}
	l.rowHeight = maxf(l.rowHeight, size.Y)
	l.rowUsed = true
	l.cursor.X += size.X + l.margin
	l.last = r
	l.track(r)
	return r
}

// SameLine makes the following elements continue the current row instead
// of starting a new one each.
func (e *Engine) SameLine(on bool) { e.layout.sameLine = on }

// BreakLines lets same-line rows wrap at the right edge of the frame.
func (e *Engine) BreakLines(on bool) { e.layout.breakLines = on }

// SetMargin sets the gap between elements and rows.
func (e *Engine) SetMargin(m float32) { e.layout.margin = m }

// SetAlign installs an alignment override for the following elements.
func (e *Engine) SetAlign(fn AlignFunc) { e.layout.align = fn }

// ClearAlign removes the alignment override.
func (e *Engine) ClearAlign() { e.layout.align = nil }

// Space places an invisible element of the given size.
func (e *Engine) Space(size Vec2) Rect {
	return e.advanceCursor(size, nil)
}

// NewLine ends the current row.
func (e *Engine) NewLine() {
	l := e.layout
	if !l.rowUsed {
		return
	}
	l.cursor.Y += l.rowHeight + l.margin
	l.cursor.X = l.frame.X
	l.rowHeight = 0
	l.rowUsed = false
}

// Cursor returns the position the next element would get without wrapping.
func (e *Engine) Cursor() Vec2 { return e.layout.cursor }

// LastRect returns the rectangle of the last placed element.
func (e *Engine) LastRect() Rect { return e.layout.last }

// ContentFrame returns the frame rows flow in.
func (e *Engine) ContentFrame() Rect { return e.layout.frame }

// Depth returns the number of open layout scopes above the root.
func (e *Engine) Depth() int { return len(e.layouts) }

// PushLayout opens a nested scope with its own draw list. The scope starts
// at the cursor and inherits the flow settings.
func (e *Engine) PushLayout() {
	e.pushLayout(e.layout.child(kindLayout))
}

// PopLayout closes the scope opened by PushLayout, splices its draw list
// into the parent and returns the union of what was placed in it. The
// parent cursor does not move.
func (e *Engine) PopLayout() Rect {
	child := e.popLayout(kindLayout)
	e.splice(child)
	return child.bounds
}

// splice appends the draw list of a closed scope to the current one,
// repoints the widgets that recorded a position in it and releases it.
func (e *Engine) splice(child *layoutContext) {
	parent := e.layout
	base := parent.list.Len()
	parent.list.Append(child.list)
	for _, w := range child.owners {
		if w.cmdList != child.list {
			continue
		}
		w.cmdList = parent.list
		w.cmdStart += base
		parent.owners = append(parent.owners, w)
	}
	releaseDrawList(child.list)
}

func (e *Engine) pushLayout(l *layoutContext) {
	e.layouts = append(e.layouts, e.layout)
	e.layout = l
}

// popLayout restores the parent scope. The child draw list is left to the
// caller.
func (e *Engine) popLayout(kind layoutKind) *layoutContext {
	if len(e.layouts) == 0 {
		panic(fmt.Errorf("pop %s at root: %w", kind, ErrUnbalancedLayout))
	}
	if e.layout.kind != kind {
		panic(fmt.Errorf("pop %s while a %s is open: %w", kind, e.layout.kind, ErrUnbalancedLayout))
	}
	child := e.layout
	e.layout = e.layouts[len(e.layouts)-1]
	e.layouts = e.layouts[:len(e.layouts)-1]
	return child
}

// PushViewport opens a fixed, clipped region. Content flows from the
// region origin and is clipped to it; nothing scrolls.
func (e *Engine) PushViewport(r Rect) {
	l := e.layout.child(kindClip)
	l.cursor = r.Pos()
	l.frame = r
	l.clip = e.layout.clip.Intersect(r)
	l.rowHeight, l.rowUsed = 0, false
	e.pushLayout(l)
}

// PopViewport closes the region opened by PushViewport.
func (e *Engine) PopViewport() {
	child := e.popLayout(kindClip)
	parent := e.layout.list
	parent.Save()
	parent.Clip(child.frame)
	e.splice(child)
	parent.Restore()
}
