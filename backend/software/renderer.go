package software

import (
	"fmt"

	"github.com/go-theft-auto/rgui"
)

// EventSource is a Display that collects its own input, like Canvas.
type EventSource interface {
	PollEvents(q *rgui.Queue[rgui.Event])
}

type backgrounder interface {
	BackgroundColor() rgui.Color
}

// Renderer rasterizes collections on the CPU and presents them with
// UpdateWithBuffer.
type Renderer struct {
	raster *Rasterizer
	buf    []uint32
}

var _ rgui.Renderer = (*Renderer)(nil)

// NewRenderer creates a software renderer.
func NewRenderer() (*Renderer, error) {
	r, err := NewRasterizer(1, 1)
	if err != nil {
		return nil, err
	}
	return &Renderer{raster: r}, nil
}

// Rasterizer exposes the underlying rasterizer, e.g. for text measurement.
func (r *Renderer) Rasterizer() *Rasterizer { return r.raster }

func (r *Renderer) DetectDisplayEvents(q *rgui.Queue[rgui.Event], d rgui.Display) {
	if src, ok := d.(EventSource); ok {
		src.PollEvents(q)
	}
}

// DrawCollection repaints the whole frame. Displays that report a
// background color get it as the base; others start from black.
func (r *Renderer) DrawCollection(c *rgui.Collection, d rgui.Display) error {
	if !d.IsOpen() {
		return rgui.ErrDisplayClosed
	}
	size := d.Size()
	w, h := int(size.X), int(size.Y)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("display size %v", size)
	}
	r.raster.Resize(w, h)

	bg := rgui.ColorBlack
	if b, ok := d.(backgrounder); ok {
		bg = b.BackgroundColor()
	}
	r.raster.Fill(bg)
	r.raster.Paint(c)

	if cap(r.buf) < w*h {
		r.buf = make([]uint32, w*h)
	}
	r.buf = r.buf[:w*h]
	pix := r.raster.Image().Pix
	for i := range r.buf {
		j := i * 4
		r.buf[i] = uint32(pix[j])<<16 | uint32(pix[j+1])<<8 | uint32(pix[j+2])
	}
	return d.UpdateWithBuffer(r.buf, w, h)
}
