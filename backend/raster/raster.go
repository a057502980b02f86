// Package raster paints flowgui frames into an *image.RGBA. It needs no
// window or GPU, which makes it the backend for tests and screenshots.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/flowgui"
)

var errNoFace = errors.New("raster: no font face")

// Canvas is a flowgui.DrawingContext over an RGBA image.
type Canvas struct {
	dst    *image.RGBA
	theme  flowgui.Theme
	styles map[flowgui.StyleID]flowgui.ResolvedStyle
	text   color.NRGBA
	face   font.Face
	scaler draw.Scaler

	clip  image.Rectangle
	stack []image.Rectangle
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithTheme sets the theme styles are resolved with.
func WithTheme(t flowgui.Theme) Option {
	return func(c *Canvas) { c.theme = t }
}

// WithFace sets the font. The default is basicfont.Face7x13.
func WithFace(f font.Face) Option {
	return func(c *Canvas) { c.face = f }
}

// WithScaler sets the image scaler used by DrawImage. The default is
// draw.ApproxBiLinear.
func WithScaler(s draw.Scaler) Option {
	return func(c *Canvas) { c.scaler = s }
}

// New creates a canvas painting into dst.
func New(dst *image.RGBA, opts ...Option) *Canvas {
	c := &Canvas{
		dst:    dst,
		theme:  flowgui.DefaultTheme(),
		face:   basicfont.Face7x13,
		scaler: draw.ApproxBiLinear,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.text = c.theme.TextColor()
	c.styles = make(map[flowgui.StyleID]flowgui.ResolvedStyle)
	c.clip = dst.Bounds()
	return c
}

// NewGoRegular returns the Go Regular font at the given size in points at
// 72 DPI.
func NewGoRegular(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return face, nil
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Paint clears the image to the theme background and paints one frame of
// e into it.
func (c *Canvas) Paint(e *flowgui.Engine) error {
	c.clip = c.dst.Bounds()
	c.stack = c.stack[:0]
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(c.theme.BackgroundColor()), image.Point{}, draw.Src)
	return e.OnPaint(c)
}

// MeasureText returns the advance width and line height of text.
func (c *Canvas) MeasureText(text string) (flowgui.Vec2, error) {
	if c.face == nil {
		return flowgui.Vec2{}, errNoFace
	}
	m := c.face.Metrics()
	adv := font.MeasureString(c.face, text)
	return flowgui.Vec2{
		X: float32(adv.Ceil()),
		Y: float32((m.Ascent + m.Descent).Ceil()),
	}, nil
}

// FillText draws text with its box's top-left corner at (x, y).
func (c *Canvas) FillText(text string, x, y float32) {
	if c.face == nil || c.clip.Empty() {
		return
	}
	d := font.Drawer{
		Dst:  c.target(),
		Src:  image.NewUniform(c.text),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y*64) + c.face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// DrawImage scales the src part of img into dst.
func (c *Canvas) DrawImage(img image.Image, src, dst flowgui.Rect) {
	dr := pixelRect(dst)
	if img == nil || dr.Intersect(c.clip).Empty() {
		return
	}
	c.scaler.Scale(c.target(), dr, img, pixelRect(src), draw.Over, nil)
}

// DrawThemedRect fills and strokes r with the theme paint for style.
func (c *Canvas) DrawThemedRect(style flowgui.StyleID, r flowgui.Rect) {
	s := c.resolve(style)
	pr := pixelRect(r)
	if s.Fill.A > 0 {
		c.fill(pr, s.Fill)
	}
	if s.Stroke.A > 0 && s.StrokeWidth > 0 {
		w := int(math.Max(1, math.Round(float64(s.StrokeWidth))))
		c.fill(image.Rect(pr.Min.X, pr.Min.Y, pr.Max.X, pr.Min.Y+w), s.Stroke)
		c.fill(image.Rect(pr.Min.X, pr.Max.Y-w, pr.Max.X, pr.Max.Y), s.Stroke)
		c.fill(image.Rect(pr.Min.X, pr.Min.Y+w, pr.Min.X+w, pr.Max.Y-w), s.Stroke)
		c.fill(image.Rect(pr.Max.X-w, pr.Min.Y+w, pr.Max.X, pr.Max.Y-w), s.Stroke)
	}
}

// Save pushes the clip.
func (c *Canvas) Save() { c.stack = append(c.stack, c.clip) }

// Restore pops the clip.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.clip = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Clip narrows the clip to r.
func (c *Canvas) Clip(r flowgui.Rect) {
	c.clip = c.clip.Intersect(pixelRect(r))
}

func (c *Canvas) resolve(style flowgui.StyleID) flowgui.ResolvedStyle {
	s, ok := c.styles[style]
	if !ok {
		s = c.theme.Resolve(style)
		c.styles[style] = s
	}
	return s
}

func (c *Canvas) fill(r image.Rectangle, col color.NRGBA) {
	r = r.Intersect(c.clip)
	if r.Empty() {
		return
	}
	draw.Draw(c.dst, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// target is the destination limited to the clip, in the same coordinates.
func (c *Canvas) target() draw.Image {
	return c.dst.SubImage(c.clip).(*image.RGBA)
}

func pixelRect(r flowgui.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.X))),
		int(math.Round(float64(r.Y))),
		int(math.Round(float64(r.X+r.W))),
		int(math.Round(float64(r.Y+r.H))),
	)
}
