package opengl

import (
	"image/color"
	"sync"
)

// Vertex is one UI vertex. The layout matches the shader attributes.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // 0xAABBGGRR
}

// DrawCmd is a run of indices sharing a clip rectangle and a texture.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

var batchPool = sync.Pool{
	New: func() any {
		return &Batch{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireBatch gets a cleared batch from the pool.
func AcquireBatch() *Batch {
	b := batchPool.Get().(*Batch)
	b.Clear()
	return b
}

// ReleaseBatch returns b to the pool.
func ReleaseBatch(b *Batch) {
	if b != nil {
		batchPool.Put(b)
	}
}

// Batch accumulates the triangles of one frame, split into commands by
// clip rectangle and texture.
type Batch struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the batch and keeps its buffers.
func (b *Batch) Clear() {
	b.CmdBuffer = b.CmdBuffer[:0]
	b.VtxBuffer = b.VtxBuffer[:0]
	b.IdxBuffer = b.IdxBuffer[:0]
	b.clipStack = b.clipStack[:0]
	b.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	b.textureID = 0
	b.cmdOffset = 0
	b.idxCmdOffset = 0
}

// PushClipRect intersects the clip with (x1, y1)-(x2, y2) until the
// matching PopClipRect.
func (b *Batch) PushClipRect(x1, y1, x2, y2 float32) {
	b.clipStack = append(b.clipStack, b.currentClip)
	c := b.currentClip
	b.currentClip = [4]float32{
		max(c[0], x1), max(c[1], y1),
		min(c[2], x2), min(c[3], y2),
	}
	b.splitDraw()
}

// PopClipRect restores the previous clip.
func (b *Batch) PopClipRect() {
	n := len(b.clipStack)
	if n > 0 {
		b.currentClip = b.clipStack[n-1]
		b.clipStack = b.clipStack[:n-1]
		b.splitDraw()
	}
}

// ClipRect returns the current clip as x1, y1, x2, y2.
func (b *Batch) ClipRect() [4]float32 { return b.currentClip }

// SetTexture binds a texture for the following primitives.
func (b *Batch) SetTexture(textureID uint32) {
	if b.textureID != textureID {
		b.textureID = textureID
		b.splitDraw()
	}
}

// splitDraw closes the current command and opens a new one.
func (b *Batch) splitDraw() {
	if len(b.CmdBuffer) > 0 {
		last := &b.CmdBuffer[len(b.CmdBuffer)-1]
		last.ElemCount = uint32(len(b.IdxBuffer)) - b.idxCmdOffset
	}
	b.CmdBuffer = append(b.CmdBuffer, DrawCmd{
		ClipRect:     b.currentClip,
		TextureID:    b.textureID,
		VertexOffset: uint32(len(b.VtxBuffer)),
		IndexOffset:  uint32(len(b.IdxBuffer)),
	})
	b.cmdOffset = uint32(len(b.VtxBuffer))
	b.idxCmdOffset = uint32(len(b.IdxBuffer))
}

// addQuad appends a textured quad. Indices are relative to the command's
// vertex offset; a command that would overflow 16-bit indices is split.
func (b *Batch) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, col uint32) {
	if len(b.CmdBuffer) == 0 || uint32(len(b.VtxBuffer))-b.cmdOffset > 0xFFFF-4 {
		b.splitDraw()
	}
	idx := uint16(uint32(len(b.VtxBuffer)) - b.cmdOffset)
	b.VtxBuffer = append(b.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: col},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: col},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: col},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: col},
	)
	b.IdxBuffer = append(b.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (b *Batch) AddRect(x, y, w, h float32, col uint32) {
	if col&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	b.SetTexture(0)
	b.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, col)
}

// AddRectOutline draws a rectangle outline inside (x, y, w, h).
func (b *Batch) AddRectOutline(x, y, w, h float32, col uint32, thickness float32) {
	if col&0xFF000000 == 0 {
		return
	}
	b.AddRect(x, y, w, thickness, col)
	b.AddRect(x, y+h-thickness, w, thickness, col)
	b.AddRect(x, y+thickness, thickness, h-2*thickness, col)
	b.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, col)
}

// AddImage draws a texture region. uv is u0, v0, u1, v1.
func (b *Batch) AddImage(textureID uint32, x, y, w, h float32, uv [4]float32, col uint32) {
	if textureID == 0 || w <= 0 || h <= 0 {
		return
	}
	b.SetTexture(textureID)
	b.addQuad(x, y, x+w, y+h, uv[0], uv[1], uv[2], uv[3], col)
}

// GlyphQuad is one character quad.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws glyph quads from textureID tinted with col.
func (b *Batch) AddGlyphQuads(textureID uint32, quads []GlyphQuad, col uint32) {
	if col&0xFF000000 == 0 || len(quads) == 0 {
		return
	}
	b.SetTexture(textureID)
	for _, q := range quads {
		b.addQuad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, col)
	}
}

// Finalize closes the last command and drops empty ones. Call it once
// before rendering.
func (b *Batch) Finalize() {
	if len(b.CmdBuffer) > 0 {
		last := &b.CmdBuffer[len(b.CmdBuffer)-1]
		last.ElemCount = uint32(len(b.IdxBuffer)) - b.idxCmdOffset
	}
	filtered := b.CmdBuffer[:0]
	for _, cmd := range b.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	b.CmdBuffer = filtered
}

// PackColor packs c as 0xAABBGGRR.
func PackColor(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}
