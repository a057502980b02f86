// Package demo is a tile browser shared by the example programs and the
// screenshot generator.
package demo

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/go-theft-auto/flowgui"
)

// Tile is one browsable item.
type Tile struct {
	ID    int
	Name  string
	Image image.Image
}

// Bytes is the pixel memory of the tile image.
func (t Tile) Bytes() uint64 {
	if t.Image == nil {
		return 0
	}
	b := t.Image.Bounds()
	return uint64(b.Dx() * b.Dy() * 4)
}

var tileSizes = []string{"Small", "Medium", "Large"}

var tilePixels = []float32{32, 48, 64}

// Browser is the demo state: a reorderable, resizable grid of tiles with
// a size picker and a details line for the selected tile.
type Browser struct {
	Tiles    []Tile
	Selected int
	SizeIdx  int
	Stats    bool

	opened string
}

// NewBrowser creates a browser holding n generated tiles.
func NewBrowser(n int) *Browser {
	b := &Browser{Selected: -1, SizeIdx: 1}
	for i := 0; i < n; i++ {
		b.Tiles = append(b.Tiles, Tile{
			ID:    i,
			Name:  fmt.Sprintf("tile-%02d", i),
			Image: gradient(i, 64),
		})
	}
	return b
}

// Move places the tile at index from before index to. to may equal
// len(Tiles) to move a tile to the end.
func (b *Browser) Move(from, to int) {
	if from < 0 || from >= len(b.Tiles) || to < 0 || to > len(b.Tiles) || from == to {
		return
	}
	t := b.Tiles[from]
	b.Tiles = slices.Delete(b.Tiles, from, from+1)
	if to > from {
		to--
	}
	b.Tiles = slices.Insert(b.Tiles, to, t)
	if b.Selected == from {
		b.Selected = to
	}
}

// Remove deletes the tile at index i.
func (b *Browser) Remove(i int) {
	if i < 0 || i >= len(b.Tiles) {
		return
	}
	b.Tiles = slices.Delete(b.Tiles, i, i+1)
	if b.Selected >= len(b.Tiles) {
		b.Selected = len(b.Tiles) - 1
	}
}

// Build describes the browser UI. Pass it to flowgui.New.
func (b *Browser) Build(e *flowgui.Engine) {
	e.Label("Tile size:")
	e.SameLine(true)
	e.RadioGroup("size", &b.SizeIdx, tileSizes)
	e.SameLine(false)

	b.Stats = e.Toggle("stats", "Stats")
	e.SameLine(true)
	if e.Button("reset", "Reset order") {
		e.AfterPaint(func() {
			slices.SortFunc(b.Tiles, func(x, y Tile) int { return x.ID - y.ID })
			e.Repaint()
		})
	}
	e.SameLine(false)

	item := tilePixels[b.SizeIdx]
	e.BeginViewport("tiles", flowgui.Vec2{X: 6*item + 12, Y: 3*item + 12},
		flowgui.WithItemSize(flowgui.Vec2{X: item, Y: item}),
		flowgui.WithResizable(nil))
	e.SetMargin(0)
	r := e.ClipItems(len(b.Tiles))
	r.Lead(e)
	for i := r.Start; i < r.End; i++ {
		b.tile(e, i, b.Tiles[i], item)
	}
	r.Trail(e)
	e.EndViewport()

	if b.Selected >= 0 && b.Selected < len(b.Tiles) {
		t := b.Tiles[b.Selected]
		e.Label(fmt.Sprintf("%s  %s", t.Name, humanize.Bytes(t.Bytes())))
	} else {
		e.Label("No tile selected")
	}
	if b.opened != "" {
		e.Label("Opened " + b.opened)
	}
	if b.Stats {
		e.Label(e.Stats().String())
	}
}

func (b *Browser) tile(e *flowgui.Engine, i int, t Tile, item float32) {
	e.PushIDInt(t.ID)
	defer e.PopID()

	w := e.Image("tile", t.Image, flowgui.Vec2{X: item, Y: item},
		flowgui.WithWantsFocus(true),
		flowgui.WithDoubleClick(func(*flowgui.Widget, flowgui.PointerEvent) {
			b.opened = t.Name
		}),
		flowgui.WithKey(func(_ *flowgui.Widget, key flowgui.Key, _ flowgui.Modifiers) bool {
			if key != flowgui.KeyDelete {
				return false
			}
			e.AfterPaint(func() {
				b.Remove(slices.IndexFunc(b.Tiles, func(x Tile) bool { return x.ID == t.ID }))
				e.Repaint()
			})
			return true
		}))
	if w.Focused() {
		b.Selected = i
	}

	if e.BeginDrag() {
		e.SetDragData("tile", i)
	}
	if e.BeginDrop() {
		from, ok := flowgui.DropValue[int](e, "tile")
		if !ok {
			return
		}
		to := i
		if slot, ok := e.DropSlot(); ok && slot.Cell.X-float32(math.Floor(float64(slot.Cell.X))) > 0.5 {
			to++
		}
		e.AfterPaint(func() {
			b.Move(from, to)
			e.Repaint()
		})
	}
}

// gradient draws a size x size tile whose hue follows n.
func gradient(n, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	base := color.NRGBA{
		R: uint8(40 + n*53%200),
		G: uint8(40 + n*97%200),
		B: uint8(40 + n*31%200),
		A: 0xff,
	}
	for y := 0; y < size; y++ {
		shade := uint8(y * 96 / size)
		for x := 0; x < size; x++ {
			img.Set(x, y, color.NRGBA{
				R: base.R - min(base.R, shade),
				G: base.G - min(base.G, shade),
				B: base.B - min(base.B, shade),
				A: 0xff,
			})
		}
	}
	return img
}
