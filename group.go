package flowgui

// group collects the widgets placed between BeginGroup and EndGroup.
type group struct {
	parent  ID
	touched []*Widget
	seen    map[ID]struct{}
}

func (g *group) add(w *Widget) {
	if _, ok := g.seen[w.ID]; ok {
		return
	}
	g.seen[w.ID] = struct{}{}
	g.touched = append(g.touched, w)
}

// BeginGroup starts laying out a block whose size is known only once its
// contents are placed. The block is positioned as a single element by
// EndGroup.
func (e *Engine) BeginGroup() {
	e.groups = append(e.groups, &group{
		parent: e.layout.viewport,
		seen:   make(map[ID]struct{}),
	})
	e.pushLayout(e.layout.child(kindGroup))
	l := e.layout
	l.rowHeight, l.rowUsed = 0, false
	l.frame.X = l.cursor.X
	l.frame.W = maxf(0, e.layouts[len(e.layouts)-1].frame.Right()-l.cursor.X)
}

// EndGroup places the union of the group members as one element and moves
// every widget of the group by the offset the layout assigned. It returns
// the placed rectangle.
//
// Members are the widgets of the group's own viewport; widgets inside a
// viewport nested in the group do not count toward the size but move with
// it.
func (e *Engine) EndGroup() Rect {
	child := e.popLayout(kindGroup)
	g := e.groups[len(e.groups)-1]
	e.groups = e.groups[:len(e.groups)-1]

	union := Rect{X: child.frame.X, Y: child.cursor.Y}
	first := true
	for _, w := range g.touched {
		if w.Parent != g.parent {
			continue
		}
		if first {
			union = w.Bounds
			first = false
			continue
		}
		union = union.Union(w.Bounds)
	}
	if first && child.hasBounds {
		union = child.bounds
	}

	var delta Vec2
	placed := e.advanceCursor(union.Size(), func(r Rect) {
		delta = r.Pos().Sub(union.Pos())
	})

	if !delta.IsZero() {
		for _, w := range g.touched {
			w.Bounds = w.Bounds.Translate(delta)
		}
		child.list.translateClips(delta)
	}

	e.splice(child)

	// The outer groups saw the members through UpdateWidget already.
	return placed
}
