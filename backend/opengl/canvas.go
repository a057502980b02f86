package opengl

import (
	"image"

	"github.com/go-theft-auto/flowgui"
)

// TextureSource turns images into texture IDs. The Renderer uploads and
// caches them; tests can fake it.
type TextureSource interface {
	Texture(img image.Image) (id uint32, ok bool)
}

// Canvas is a flowgui.DrawingContext that records into a Batch.
type Canvas struct {
	batch    *Batch
	atlas    *Atlas
	fontTex  uint32
	textures TextureSource

	theme  flowgui.Theme
	styles map[flowgui.StyleID]flowgui.ResolvedStyle
	text   uint32

	quads []GlyphQuad
	// saves holds the number of clips pushed since each Save.
	saves []int
	clips int
}

// NewCanvas creates a canvas drawing glyphs from atlas, uploaded as
// fontTex, and images through textures.
func NewCanvas(atlas *Atlas, fontTex uint32, textures TextureSource, theme flowgui.Theme) *Canvas {
	return &Canvas{
		atlas:    atlas,
		fontTex:  fontTex,
		textures: textures,
		theme:    theme,
		styles:   make(map[flowgui.StyleID]flowgui.ResolvedStyle),
		text:     PackColor(theme.TextColor()),
	}
}

// Reset points the canvas at b and drops any clip state.
func (c *Canvas) Reset(b *Batch) {
	c.batch = b
	c.saves = c.saves[:0]
	c.clips = 0
}

// SetTheme replaces the theme.
func (c *Canvas) SetTheme(theme flowgui.Theme) {
	c.theme = theme
	clear(c.styles)
	c.text = PackColor(theme.TextColor())
}

func (c *Canvas) MeasureText(text string) (flowgui.Vec2, error) {
	w, h := c.atlas.Measure(text)
	return flowgui.Vec2{X: w, Y: h}, nil
}

func (c *Canvas) FillText(text string, x, y float32) {
	c.quads = c.atlas.Quads(c.quads[:0], text, x, y)
	c.batch.AddGlyphQuads(c.fontTex, c.quads, c.text)
}

func (c *Canvas) DrawImage(img image.Image, src, dst flowgui.Rect) {
	if img == nil || c.textures == nil {
		return
	}
	tex, ok := c.textures.Texture(img)
	if !ok {
		return
	}
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if w == 0 || h == 0 {
		return
	}
	uv := [4]float32{
		(src.X - float32(b.Min.X)) / w,
		(src.Y - float32(b.Min.Y)) / h,
		(src.X + src.W - float32(b.Min.X)) / w,
		(src.Y + src.H - float32(b.Min.Y)) / h,
	}
	c.batch.AddImage(tex, dst.X, dst.Y, dst.W, dst.H, uv, 0xFFFFFFFF)
}

func (c *Canvas) DrawThemedRect(style flowgui.StyleID, r flowgui.Rect) {
	s, ok := c.styles[style]
	if !ok {
		s = c.theme.Resolve(style)
		c.styles[style] = s
	}
	if s.Fill.A > 0 {
		c.batch.AddRect(r.X, r.Y, r.W, r.H, PackColor(s.Fill))
	}
	if s.Stroke.A > 0 && s.StrokeWidth > 0 {
		c.batch.AddRectOutline(r.X, r.Y, r.W, r.H, PackColor(s.Stroke), s.StrokeWidth)
	}
}

func (c *Canvas) Save() {
	c.saves = append(c.saves, c.clips)
	c.clips = 0
}

func (c *Canvas) Restore() {
	for ; c.clips > 0; c.clips-- {
		c.batch.PopClipRect()
	}
	if n := len(c.saves); n > 0 {
		c.clips = c.saves[n-1]
		c.saves = c.saves[:n-1]
	}
}

func (c *Canvas) Clip(r flowgui.Rect) {
	c.batch.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	c.clips++
}
