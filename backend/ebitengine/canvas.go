// Package ebitengine paints flowgui frames onto Ebitengine images and runs
// an engine as an ebiten.Game.
package ebitengine

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/flowgui"
)

// DefaultFontSize is the Go Regular size used when no face is given.
const DefaultFontSize = 14

// Canvas is a flowgui.DrawingContext over an *ebiten.Image.
type Canvas struct {
	dst    *ebiten.Image
	face   text.Face
	theme  flowgui.Theme
	styles map[flowgui.StyleID]flowgui.ResolvedStyle
	text   color.NRGBA

	images map[image.Image]*ebiten.Image

	clip  image.Rectangle
	stack []image.Rectangle
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithFace sets the text face.
func WithFace(face text.Face) CanvasOption {
	return func(c *Canvas) { c.face = face }
}

// WithTheme sets the theme styles are resolved with.
func WithTheme(t flowgui.Theme) CanvasOption {
	return func(c *Canvas) { c.theme = t }
}

// NewCanvas creates a canvas. Without WithFace it uses Go Regular at
// DefaultFontSize.
func NewCanvas(opts ...CanvasOption) (*Canvas, error) {
	c := &Canvas{
		theme:  flowgui.DefaultTheme(),
		images: make(map[image.Image]*ebiten.Image),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.face == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to load Go Regular: %w", err)
		}
		c.face = &text.GoTextFace{Source: src, Size: DefaultFontSize}
	}
	c.text = c.theme.TextColor()
	c.styles = make(map[flowgui.StyleID]flowgui.ResolvedStyle)
	return c, nil
}

// Paint clears dst to the theme background and paints one frame of e.
func (c *Canvas) Paint(dst *ebiten.Image, e *flowgui.Engine) error {
	c.dst = dst
	c.clip = dst.Bounds()
	c.stack = c.stack[:0]
	dst.Fill(c.theme.BackgroundColor())
	return e.OnPaint(c)
}

// Evict drops the cached copy of img.
func (c *Canvas) Evict(img image.Image) {
	if eimg, ok := c.images[img]; ok {
		eimg.Deallocate()
		delete(c.images, img)
	}
}

func (c *Canvas) MeasureText(s string) (flowgui.Vec2, error) {
	w, h := text.Measure(s, c.face, 0)
	return flowgui.Vec2{X: float32(math.Ceil(w)), Y: float32(math.Ceil(h))}, nil
}

func (c *Canvas) FillText(s string, x, y float32) {
	target, ok := c.target()
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.text)
	text.Draw(target, s, c.face, op)
}

func (c *Canvas) DrawImage(img image.Image, src, dst flowgui.Rect) {
	target, ok := c.target()
	if !ok || img == nil || src.Empty() || dst.Empty() {
		return
	}
	eimg, ok := c.images[img]
	if !ok {
		if eimg, ok = img.(*ebiten.Image); !ok {
			eimg = ebiten.NewImageFromImage(img)
		}
		c.images[img] = eimg
	}
	sub := eimg.SubImage(image.Rect(
		int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(src.X), -float64(src.Y))
	op.GeoM.Scale(float64(dst.W/src.W), float64(dst.H/src.H))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	target.DrawImage(sub, op)
}

func (c *Canvas) DrawThemedRect(style flowgui.StyleID, r flowgui.Rect) {
	target, ok := c.target()
	if !ok {
		return
	}
	s, ok := c.styles[style]
	if !ok {
		s = c.theme.Resolve(style)
		c.styles[style] = s
	}
	if s.Fill.A > 0 {
		vector.DrawFilledRect(target, r.X, r.Y, r.W, r.H, s.Fill, false)
	}
	if s.Stroke.A > 0 && s.StrokeWidth > 0 {
		half := s.StrokeWidth / 2
		vector.StrokeRect(target, r.X+half, r.Y+half, r.W-s.StrokeWidth, r.H-s.StrokeWidth, s.StrokeWidth, s.Stroke, false)
	}
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.clip) }

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.clip = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Clip(r flowgui.Rect) {
	c.clip = c.clip.Intersect(image.Rect(
		int(math.Floor(float64(r.X))),
		int(math.Floor(float64(r.Y))),
		int(math.Ceil(float64(r.X+r.W))),
		int(math.Ceil(float64(r.Y+r.H))),
	))
}

// target is the destination limited to the clip. Sub-images keep the
// destination's coordinates.
func (c *Canvas) target() (*ebiten.Image, bool) {
	if c.dst == nil || c.clip.Empty() {
		return nil, false
	}
	return c.dst.SubImage(c.clip).(*ebiten.Image), true
}
