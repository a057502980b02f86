package flowgui

// ItemRange is the part of a uniform item grid that intersects the visible
// area of its viewport. Large grids place only Start through End-1 and
// stand in for the rest with two spacers, so the scrollable size stays
// that of the full grid.
//
// Usage:
//
//	e.BeginViewport("grid", size, flowgui.WithItemSize(item))
//	r := e.ClipItems(len(items))
//	r.Lead(e)
//	for i := r.Start; i < r.End; i++ {
//	    // place item i
//	}
//	r.Trail(e)
//	e.EndViewport()
type ItemRange struct {
	Start   int // first placed item (inclusive)
	End     int // last placed item (exclusive)
	Total   int
	Columns int

	pitch  Vec2 // item size plus margin
	margin float32
}

// ClipItems computes the visible range of total items in the innermost
// item-grid viewport. Items must have the viewport's item size. Outside
// an item grid every item is in range.
func (e *Engine) ClipItems(total int) ItemRange {
	all := ItemRange{End: total, Total: total, Columns: 1}
	if len(e.viewports) == 0 || e.layout.kind != kindViewport {
		return all
	}
	vs := e.viewports[len(e.viewports)-1].Scroll
	item := vs.ItemSize
	if total <= 0 || item.X <= 0 || item.Y <= 0 {
		return all
	}

	l := e.layout
	pitch := Vec2{X: item.X + l.margin, Y: item.Y + l.margin}
	cols := max(1, int(floorf((l.frame.W+l.margin)/pitch.X)))

	// One extra row covers partial visibility at the top and bottom.
	totalRows := (total + cols - 1) / cols
	startRow := min(totalRows-1, max(0, int(floorf(vs.ScrollPos.Y/pitch.Y))))
	visibleRows := int(l.frame.H/pitch.Y) + 2
	start := startRow * cols
	end := min(total, (startRow+visibleRows)*cols)

	return ItemRange{
		Start:   start,
		End:     end,
		Total:   total,
		Columns: cols,
		pitch:   pitch,
		margin:  l.margin,
	}
}

// Contains reports whether item i is placed.
func (r ItemRange) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

func (r ItemRange) rows(n int) int {
	return (n + r.Columns - 1) / r.Columns
}

// Lead places the spacer for the rows above Start.
func (r ItemRange) Lead(e *Engine) {
	if r.pitch.X == 0 || r.Start == 0 {
		return
	}
	e.Space(Vec2{
		X: float32(r.Columns)*r.pitch.X - r.margin,
		Y: float32(r.Start/r.Columns)*r.pitch.Y - r.margin,
	})
}

// Trail places the spacer for the rows below End.
func (r ItemRange) Trail(e *Engine) {
	if r.pitch.X == 0 || r.End >= r.Total {
		return
	}
	rest := r.rows(r.Total) - r.rows(r.End)
	if rest <= 0 {
		return
	}
	e.Space(Vec2{
		X: float32(r.Columns)*r.pitch.X - r.margin,
		Y: float32(rest)*r.pitch.Y - r.margin,
	})
}

// ScrollToItem returns the vertical scroll position that brings item i
// into a view of the given height, or current when it is already visible.
func (r ItemRange) ScrollToItem(i int, current, height float32) float32 {
	if r.pitch.Y == 0 || i < 0 || i >= r.Total {
		return current
	}
	top := float32(i/r.Columns) * r.pitch.Y
	bottom := top + r.pitch.Y - r.margin
	if top < current {
		return top
	}
	if bottom > current+height {
		return bottom - height
	}
	return current
}
