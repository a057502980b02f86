package demo

import (
	"image"
	"slices"
	"testing"

	"github.com/go-theft-auto/flowgui"
	"github.com/go-theft-auto/flowgui/backend/raster"
)

func ids(b *Browser) []int {
	out := make([]int, len(b.Tiles))
	for i, t := range b.Tiles {
		out[i] = t.ID
	}
	return out
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"forward", 0, 3, []int{1, 2, 0, 3}},
		{"backward", 3, 1, []int{0, 3, 1, 2}},
		{"to end", 1, 4, []int{0, 2, 3, 1}},
		{"same place", 2, 2, []int{0, 1, 2, 3}},
		{"out of range", 5, 0, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrowser(4)
			b.Move(tt.from, tt.to)
			if got := ids(b); !slices.Equal(got, tt.want) {
				t.Errorf("Move(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRemoveKeepsSelectionInRange(t *testing.T) {
	b := NewBrowser(3)
	b.Selected = 2
	b.Remove(2)
	if b.Selected != 1 {
		t.Errorf("Selected = %d, want 1", b.Selected)
	}
}

func TestBuildPaints(t *testing.T) {
	b := NewBrowser(12)
	e := flowgui.New(b.Build, flowgui.WithSize(flowgui.Vec2{X: 640, Y: 480}))
	c := raster.New(image.NewRGBA(image.Rect(0, 0, 640, 480)))
	for range 3 {
		if err := c.Paint(e); err != nil {
			t.Fatalf("Paint() error: %v", err)
		}
	}
	e.PushIDInt(0)
	_, ok := e.Widget(e.ID("tile"))
	e.PopID()
	if !ok {
		t.Error("first tile was not placed")
	}
}
