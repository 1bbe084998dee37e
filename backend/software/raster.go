// Package software implements rgui.Renderer on the CPU. Instructions are
// rasterized into an *image.RGBA and presented through
// Display.UpdateWithBuffer, so any Display works, including the headless
// Canvas in this package.
package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-theft-auto/rgui"
)

// Rasterizer paints instruction collections into an RGBA image.
type Rasterizer struct {
	img *image.RGBA

	font   *opentype.Font
	faces  map[int]font.Face
	images map[string]image.Image // nil entries mark failed loads
}

var _ rgui.TextMeasurer = (*Rasterizer)(nil)

// NewRasterizer creates a rasterizer with a width x height target.
func NewRasterizer(width, height int) (*Rasterizer, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Rasterizer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		font:   ft,
		faces:  make(map[int]font.Face),
		images: make(map[string]image.Image),
	}, nil
}

// Image returns the render target. It is reused across frames.
func (r *Rasterizer) Image() *image.RGBA { return r.img }

// Resize reallocates the target when the size changes.
func (r *Rasterizer) Resize(width, height int) {
	if b := r.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Fill paints the whole target with c, replacing what is there.
func (r *Rasterizer) Fill(c rgui.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// Paint draws every instruction of c in paint order.
func (r *Rasterizer) Paint(c *rgui.Collection) {
	c.Each(r.Draw)
}

// Draw rasterizes a single instruction.
func (r *Rasterizer) Draw(in rgui.Instruction) {
	if cl, ok := in.(rgui.Clear); ok {
		r.Fill(cl.Color)
		return
	}

	dst := r.img
	if clip, ok := rgui.InstructionClip(in); ok {
		sub, ok := r.clipped(clip)
		if !ok {
			return
		}
		dst = sub
	}

	switch in := in.(type) {
	case rgui.DrawPoint:
		blend(dst, int(math.Floor(in.Point.X)), int(math.Floor(in.Point.Y)), in.Color.RGBA())
	case rgui.DrawLine:
		line(dst, in.PointA, in.PointB, in.Color.RGBA())
	case rgui.DrawRect:
		rect := image.Rect(
			int(math.Round(in.Point.X)), int(math.Round(in.Point.Y)),
			int(math.Round(in.Point.X+in.Size.X)), int(math.Round(in.Point.Y+in.Size.Y)),
		)
		draw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(in.Color.RGBA()), image.Point{}, draw.Over)
	case rgui.DrawCircle:
		circle(dst, in.Point, in.Radius, in.Color.RGBA())
	case rgui.DrawArc:
		arc(dst, in.Point, in.Radius, in.StartAngle, in.EndAngle, in.Color.RGBA())
	case rgui.DrawTriangle:
		triangle(dst, in.PointA, in.PointB, in.PointC, in.Color.RGBA())
	case rgui.DrawImage:
		r.drawImage(dst, in)
	case rgui.DrawText:
		r.drawText(dst, in)
	}
}

// clipped returns a view of the target restricted to clip. SubImage shares
// pixels with the target, so drawing into the view clips for free.
func (r *Rasterizer) clipped(clip rgui.Rect) (*image.RGBA, bool) {
	if clip.Empty() {
		return nil, false
	}
	rect := image.Rect(
		int(math.Floor(clip.X)), int(math.Floor(clip.Y)),
		int(math.Ceil(clip.X+clip.W)), int(math.Ceil(clip.Y+clip.H)),
	).Intersect(r.img.Bounds())
	if rect.Empty() {
		return nil, false
	}
	return r.img.SubImage(rect).(*image.RGBA), true
}

func (r *Rasterizer) face(size float64) font.Face {
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}
	if f, ok := r.faces[px]; ok {
		return f
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size: float64(px), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	r.faces[px] = f
	return f
}

func (r *Rasterizer) drawText(dst *image.RGBA, in rgui.DrawText) {
	face := r.face(in.FontSize)
	if face == nil || in.Text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(in.Color.RGBA()),
		Face: face,
		Dot:  fixed.P(int(math.Round(in.Point.X)), int(math.Round(in.Point.Y))),
	}
	d.DrawString(in.Text)
}

// MeasureText returns the advance width of text at size.
func (r *Rasterizer) MeasureText(text string, size float64) float64 {
	face := r.face(size)
	if face == nil {
		return 0
	}
	return float64(font.MeasureString(face, text)) / 64
}

func (r *Rasterizer) loadImage(path string) image.Image {
	if img, ok := r.images[path]; ok {
		return img
	}
	f, err := os.Open(path)
	if err != nil {
		r.images[path] = nil
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		img = nil
	}
	r.images[path] = img
	return img
}

func (r *Rasterizer) drawImage(dst *image.RGBA, in rgui.DrawImage) {
	src := r.loadImage(in.Path)
	if src == nil {
		return
	}
	b := src.Bounds()
	opts := in.Options
	if opts == nil {
		opts = rgui.OriginalSize{}
	}
	size := opts.Scale(rgui.V(float64(b.Dx()), float64(b.Dy())))
	rect := image.Rect(
		int(math.Round(in.Point.X)), int(math.Round(in.Point.Y)),
		int(math.Round(in.Point.X+size.X)), int(math.Round(in.Point.Y+size.Y)),
	)
	if rect.Empty() {
		return
	}
	if rect.Dx() == b.Dx() && rect.Dy() == b.Dy() {
		draw.Draw(dst, rect, src, b.Min, draw.Over)
		return
	}
	xdraw.BiLinear.Scale(dst, rect, src, b, xdraw.Over, nil)
}

// blend composites c over the pixel at (x, y) if it lies inside dst.
func blend(dst *image.RGBA, x, y int, c color.NRGBA) {
	if !image.Pt(x, y).In(dst.Bounds()) || c.A == 0 {
		return
	}
	if c.A == 0xff {
		dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		return
	}
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	a := uint32(c.A)
	inv := 255 - a
	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*inv) / 255)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*inv) / 255)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*inv) / 255)
	p[3] = uint8(a + uint32(p[3])*inv/255)
}

func line(dst *image.RGBA, a, b rgui.Vec2, c color.NRGBA) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		blend(dst, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func circle(dst *image.RGBA, center rgui.Vec2, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	area := image.Rect(
		int(math.Floor(center.X-radius)), int(math.Floor(center.Y-radius)),
		int(math.Ceil(center.X+radius)), int(math.Ceil(center.Y+radius)),
	).Intersect(dst.Bounds())
	r2 := radius * radius
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float64(x) + 0.5 - center.X
			dy := float64(y) + 0.5 - center.Y
			if dx*dx+dy*dy <= r2 {
				blend(dst, x, y, c)
			}
		}
	}
}

func arc(dst *image.RGBA, center rgui.Vec2, radius, start, end float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	if end < start {
		start, end = end, start
	}
	step := 1 / radius
	prev := center.Add(rgui.V(math.Cos(start), math.Sin(start)).MulScalar(radius))
	for a := start + step; ; a += step {
		if a > end {
			a = end
		}
		p := center.Add(rgui.V(math.Cos(a), math.Sin(a)).MulScalar(radius))
		line(dst, prev, p, c)
		prev = p
		if a == end {
			return
		}
	}
}

func triangle(dst *image.RGBA, a, b, p rgui.Vec2, c color.NRGBA) {
	area := image.Rect(
		int(math.Floor(math.Min(a.X, math.Min(b.X, p.X)))),
		int(math.Floor(math.Min(a.Y, math.Min(b.Y, p.Y)))),
		int(math.Ceil(math.Max(a.X, math.Max(b.X, p.X)))),
		int(math.Ceil(math.Max(a.Y, math.Max(b.Y, p.Y)))),
	).Intersect(dst.Bounds())

	edge := func(u, v rgui.Vec2, x, y float64) float64 {
		return (v.X-u.X)*(y-u.Y) - (v.Y-u.Y)*(x-u.X)
	}
	if edge(a, b, p.X, p.Y) == 0 {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			w0 := edge(a, b, fx, fy)
			w1 := edge(b, p, fx, fy)
			w2 := edge(p, a, fx, fy)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				blend(dst, x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
