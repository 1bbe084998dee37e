package opengl

import (
	"math"
	"sync"

	"github.com/go-theft-auto/rgui"
)

// Vertex is one vertex of the UI mesh. Memory layout matches the vertex
// attributes bound in NewRenderer.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed as 0xAABBGGRR
}

// DrawCmd is a run of indices sharing a clip rectangle and texture.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// drawListPool reuses DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// noClip is used for instructions without a clip area.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList accumulates the triangles of one frame, split into commands
// whenever the clip rectangle or texture changes.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	// ClearColor is set by a Clear instruction; HasClear reports whether
	// the frame contained one.
	ClearColor rgui.Color
	HasClear   bool

	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the DrawList for a new frame, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
	dl.HasClear = false
}

// SetClipRect switches the clip rectangle for subsequent primitives.
func (dl *DrawList) SetClipRect(x1, y1, x2, y2 float32) {
	clip := [4]float32{x1, y1, x2, y2}
	if clip == dl.currentClip && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.currentClip = clip
	dl.splitDraw()
}

// SetTexture switches the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns their index relative to the current
// command. Indices are 16 bit, so a command is split before it overflows.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > math.MaxUint16 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddImage draws a textured quad covering the whole texture.
func (dl *DrawList) AddImage(x, y, w, h float32, textureID uint32) {
	dl.SetTexture(textureID)
	const white = 0xFFFFFFFF
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{0, 0}, Color: white},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{1, 0}, Color: white},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{1, 1}, Color: white},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{0, 1}, Color: white},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
	dl.SetTexture(0)
}

// AddLine draws a line between two points as a quad of the given
// thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1.0)
	if dx != 0 || dy != 0 {
		inv = 1.0 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2)
}

// circleSegments picks a segment count that keeps edges under ~4px.
func circleSegments(radius, sweep float64) int {
	n := int(math.Ceil(sweep * radius / 4))
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	return n
}

// AddCircle draws a filled circle as a triangle fan.
func (dl *DrawList) AddCircle(cx, cy, radius float32, color uint32) {
	if color&0xFF000000 == 0 || radius <= 0 {
		return
	}
	n := circleSegments(float64(radius), 2*math.Pi)
	verts := make([]Vertex, 0, n+1)
	verts = append(verts, Vertex{Pos: [2]float32{cx, cy}, Color: color})
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		verts = append(verts, Vertex{
			Pos:   [2]float32{cx + radius*float32(math.Cos(a)), cy + radius*float32(math.Sin(a))},
			Color: color,
		})
	}
	idx := dl.addVertices(verts...)
	for i := 0; i < n; i++ {
		next := (i+1)%n + 1
		dl.addIndices(idx, idx+uint16(i+1), idx+uint16(next))
	}
}

// AddArc strokes the circle segment from start to end, in radians measured
// clockwise from the positive x axis in screen space.
func (dl *DrawList) AddArc(cx, cy, radius float32, start, end float64, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || radius <= 0 {
		return
	}
	sweep := end - start
	n := circleSegments(float64(radius), math.Abs(sweep))
	px := cx + radius*float32(math.Cos(start))
	py := cy + radius*float32(math.Sin(start))
	for i := 1; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		dl.AddLine(px, py, x, y, color, thickness)
		px, py = x, y
	}
}

// AddText draws text with the built-in 8x8 bitmap font, scaled so a glyph
// cell is size pixels tall. (x, y) is the top-left corner of the first cell.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, size float32) {
	if color&0xFF000000 == 0 || len(text) == 0 || size <= 0 {
		return
	}

	dl.SetTexture(fontTextureSentinel)
	i := 0
	for _, r := range text {
		char := unicodeFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}

		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)

		// 16x6 grid of 8x8 glyphs in a 128x48 texture
		u0 := col * 8 / 128
		v0 := row * 8 / 48
		u1 := (col + 1) * 8 / 128
		v1 := (row + 1) * 8 / 48

		px := x + float32(i)*size

		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + size, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + size, y + size}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + size}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
		i++
	}
	dl.SetTexture(0)
}

// fontTextureSentinel marks commands that sample the font atlas. The
// renderer substitutes its real texture ID.
const fontTextureSentinel = math.MaxUint32

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 32-127 only).
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→', '⯈':
		return '>'
	case '◄', '◀', '◂', '←', '⯇':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// Finalize closes the last command and drops empty ones. Call it after
// every primitive has been added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// ImageSource resolves DrawImage paths to textures.
type ImageSource interface {
	// Texture returns the texture for path and its pixel size, or false if
	// the image cannot be loaded.
	Texture(path string) (id uint32, size rgui.Vec2, ok bool)
}

// Tessellate appends the triangles for every instruction in c, in paint
// order. images may be nil, in which case DrawImage is skipped.
func (dl *DrawList) Tessellate(c *rgui.Collection, images ImageSource) {
	c.Each(func(in rgui.Instruction) {
		if clip, ok := rgui.InstructionClip(in); ok {
			if clip.Empty() {
				return
			}
			dl.SetClipRect(float32(clip.X), float32(clip.Y), float32(clip.X+clip.W), float32(clip.Y+clip.H))
		} else {
			dl.SetClipRect(noClip[0], noClip[1], noClip[2], noClip[3])
		}
		dl.add(in, images)
	})
}

func (dl *DrawList) add(in rgui.Instruction, images ImageSource) {
	switch in := in.(type) {
	case rgui.Clear:
		// Clearing discards everything painted before it.
		dl.CmdBuffer = dl.CmdBuffer[:0]
		dl.VtxBuffer = dl.VtxBuffer[:0]
		dl.IdxBuffer = dl.IdxBuffer[:0]
		dl.cmdOffset, dl.idxCmdOffset = 0, 0
		dl.ClearColor, dl.HasClear = in.Color, true
	case rgui.DrawPoint:
		dl.AddRect(float32(in.Point.X), float32(in.Point.Y), 1, 1, in.Color.ABGR())
	case rgui.DrawLine:
		dl.AddLine(float32(in.PointA.X), float32(in.PointA.Y), float32(in.PointB.X), float32(in.PointB.Y), in.Color.ABGR(), 1)
	case rgui.DrawArc:
		dl.AddArc(float32(in.Point.X), float32(in.Point.Y), float32(in.Radius), in.StartAngle, in.EndAngle, in.Color.ABGR(), 1)
	case rgui.DrawCircle:
		dl.AddCircle(float32(in.Point.X), float32(in.Point.Y), float32(in.Radius), in.Color.ABGR())
	case rgui.DrawRect:
		dl.AddRect(float32(in.Point.X), float32(in.Point.Y), float32(in.Size.X), float32(in.Size.Y), in.Color.ABGR())
	case rgui.DrawTriangle:
		dl.AddTriangle(
			float32(in.PointA.X), float32(in.PointA.Y),
			float32(in.PointB.X), float32(in.PointB.Y),
			float32(in.PointC.X), float32(in.PointC.Y),
			in.Color.ABGR(),
		)
	case rgui.DrawText:
		// The instruction's point is the baseline; the glyph cell sits on it.
		size := float32(in.FontSize)
		dl.AddText(float32(in.Point.X), float32(in.Point.Y)-size, in.Text, in.Color.ABGR(), size)
	case rgui.DrawImage:
		if images == nil {
			return
		}
		tex, src, ok := images.Texture(in.Path)
		if !ok {
			return
		}
		size := src
		if in.Options != nil {
			size = in.Options.Scale(src)
		}
		dl.AddImage(float32(in.Point.X), float32(in.Point.Y), float32(size.X), float32(size.Y), tex)
	}
}
