package opengl

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const atlasWidth = 256

// Atlas is a single-channel glyph bitmap for printable ASCII, rasterized
// from a font.Face. Runes outside the atlas draw as '?'.
type Atlas struct {
	Image *image.Alpha

	glyphs map[rune]atlasGlyph
	height float32
}

type atlasGlyph struct {
	advance float32
	// bitmap rectangle relative to the top-left of the line box
	x, y, w, h     float32
	u0, v0, u1, v1 float32
}

// NewAtlas rasterizes runes 32 through 126 of face.
func NewAtlas(face font.Face) (*Atlas, error) {
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	if lineH <= 0 {
		return nil, fmt.Errorf("font face has no height")
	}

	type placed struct {
		r    rune
		dr   image.Rectangle
		mask image.Image
		mp   image.Point
		adv  fixed.Int26_6
		cell image.Point
	}
	var glyphs []placed
	pen := image.Point{}
	for r := rune(32); r < 127; r++ {
		dr, mask, mp, adv, ok := face.Glyph(fixed.Point26_6{Y: m.Ascent}, r)
		if !ok {
			continue
		}
		if pen.X+dr.Dx()+1 > atlasWidth {
			pen = image.Point{Y: pen.Y + lineH + 1}
		}
		glyphs = append(glyphs, placed{r: r, dr: dr, mask: mask, mp: mp, adv: adv, cell: pen})
		pen.X += dr.Dx() + 1
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("font face has no ASCII glyphs")
	}

	height := pen.Y + lineH + 1
	a := &Atlas{
		Image:  image.NewAlpha(image.Rect(0, 0, atlasWidth, height)),
		glyphs: make(map[rune]atlasGlyph, len(glyphs)),
		height: float32(lineH),
	}
	tw, th := float32(atlasWidth), float32(height)
	for _, g := range glyphs {
		cell := image.Rectangle{Min: g.cell, Max: g.cell.Add(g.dr.Size())}
		if g.mask != nil && !cell.Empty() {
			draw.Draw(a.Image, cell, g.mask, g.mp, draw.Src)
		}
		a.glyphs[g.r] = atlasGlyph{
			advance: float32(g.adv) / 64,
			x:       float32(g.dr.Min.X),
			y:       float32(g.dr.Min.Y),
			w:       float32(g.dr.Dx()),
			h:       float32(g.dr.Dy()),
			u0:      float32(cell.Min.X) / tw,
			v0:      float32(cell.Min.Y) / th,
			u1:      float32(cell.Max.X) / tw,
			v1:      float32(cell.Max.Y) / th,
		}
	}
	return a, nil
}

func (a *Atlas) glyph(r rune) atlasGlyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.glyphs['?']
}

// Measure returns the advance width and line height of text.
func (a *Atlas) Measure(text string) (w, h float32) {
	for _, r := range text {
		w += a.glyph(r).advance
	}
	return w, a.height
}

// Quads lays text out with the line box's top-left corner at (x, y) and
// appends one quad per visible glyph to dst.
func (a *Atlas) Quads(dst []GlyphQuad, text string, x, y float32) []GlyphQuad {
	pen := x
	for _, r := range text {
		g := a.glyph(r)
		if g.w > 0 && g.h > 0 {
			x0, y0 := pen+g.x, y+g.y
			dst = append(dst, GlyphQuad{
				X0: x0, Y0: y0, X1: x0 + g.w, Y1: y0 + g.h,
				U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
			})
		}
		pen += g.advance
	}
	return dst
}
