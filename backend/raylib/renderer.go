package raylib

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/rgui"
)

// Renderer draws instructions with raylib's immediate-mode shape calls.
type Renderer struct {
	textures map[string]rl.Texture2D // zero ID marks a failed load
}

var _ rgui.Renderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{textures: make(map[string]rl.Texture2D)}
}

func (r *Renderer) DetectDisplayEvents(q *rgui.Queue[rgui.Event], d rgui.Display) {
	if w, ok := d.(*Window); ok {
		w.poll(q)
	}
}

// DrawCollection begins a raylib frame, draws c and lets the display end
// the frame.
func (r *Renderer) DrawCollection(c *rgui.Collection, d rgui.Display) error {
	if !d.IsOpen() {
		return rgui.ErrDisplayClosed
	}
	bg := rgui.ColorBlack
	if w, ok := d.(*Window); ok {
		bg = w.bg
	}

	rl.BeginDrawing()
	rl.ClearBackground(rlColor(bg))
	c.Each(r.draw)
	d.Update()
	return nil
}

func (r *Renderer) draw(in rgui.Instruction) {
	if cl, ok := in.(rgui.Clear); ok {
		rl.ClearBackground(rlColor(cl.Color))
		return
	}
	clip, ok := rgui.InstructionClip(in)
	if !ok || clip.Empty() {
		return
	}
	rl.BeginScissorMode(int32(math.Floor(clip.X)), int32(math.Floor(clip.Y)), int32(math.Ceil(clip.W)), int32(math.Ceil(clip.H)))
	defer rl.EndScissorMode()

	switch in := in.(type) {
	case rgui.DrawPoint:
		rl.DrawPixelV(vec(in.Point), rlColor(in.Color))
	case rgui.DrawLine:
		rl.DrawLineV(vec(in.PointA), vec(in.PointB), rlColor(in.Color))
	case rgui.DrawRect:
		rl.DrawRectangleV(vec(in.Point), vec(in.Size), rlColor(in.Color))
	case rgui.DrawCircle:
		rl.DrawCircleV(vec(in.Point), float32(in.Radius), rlColor(in.Color))
	case rgui.DrawArc:
		drawArc(in)
	case rgui.DrawTriangle:
		a, b, p := vec(in.PointA), vec(in.PointB), vec(in.PointC)
		// raylib only fills counter-clockwise triangles.
		if (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) > 0 {
			b, p = p, b
		}
		rl.DrawTriangle(a, b, p, rlColor(in.Color))
	case rgui.DrawImage:
		r.drawImage(in)
	case rgui.DrawText:
		size := int32(math.Max(1, math.Round(in.FontSize)))
		rl.DrawText(in.Text, int32(in.Point.X), int32(in.Point.Y)-size, size, rlColor(in.Color))
	}
}

func drawArc(in rgui.DrawArc) {
	if in.Radius <= 0 {
		return
	}
	start, end := in.StartAngle, in.EndAngle
	if end < start {
		start, end = end, start
	}
	segments := int(math.Max(4, math.Ceil((end-start)*in.Radius/4)))
	step := (end - start) / float64(segments)
	point := func(a float64) rl.Vector2 {
		return vec(in.Point.Add(rgui.V(math.Cos(a), math.Sin(a)).MulScalar(in.Radius)))
	}
	prev := point(start)
	for i := 1; i <= segments; i++ {
		next := point(start + float64(i)*step)
		rl.DrawLineV(prev, next, rlColor(in.Color))
		prev = next
	}
}

func (r *Renderer) drawImage(in rgui.DrawImage) {
	tex, ok := r.textures[in.Path]
	if !ok {
		tex = rl.LoadTexture(in.Path)
		r.textures[in.Path] = tex
	}
	if tex.ID == 0 {
		return
	}
	opts := in.Options
	if opts == nil {
		opts = rgui.OriginalSize{}
	}
	size := opts.Scale(rgui.V(float64(tex.Width), float64(tex.Height)))
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(in.Point.X), float32(in.Point.Y), float32(size.X), float32(size.Y))
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

// Unload frees every texture loaded for DrawImage.
func (r *Renderer) Unload() {
	for path, tex := range r.textures {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
		delete(r.textures, path)
	}
}

func vec(v rgui.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

// rlColor converts to raylib's straight-alpha color struct.
func rlColor(c rgui.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
